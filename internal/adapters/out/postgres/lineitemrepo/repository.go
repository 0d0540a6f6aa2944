package lineitemrepo

import (
	"context"
	"errors"
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLineItemLedger implements LineItemLedger using GORM.
type GormLineItemLedger struct {
	db *gorm.DB
}

// NewGormLineItemLedger creates a new GORM line item ledger.
func NewGormLineItemLedger(db *gorm.DB) *GormLineItemLedger {
	return &GormLineItemLedger{db: db}
}

// Increment raises the quantity for (orderID, itemID) by one, creating the row
// with quantity 1 when absent. The read-modify-write is pushed down to the
// database as a single INSERT .. ON CONFLICT so concurrent increments of the
// same key cannot lose updates.
func (l *GormLineItemLedger) Increment(ctx context.Context, orderID, itemID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return err
	}

	dto := LineItemDTO{
		OrderID:  orderID.Bytes(),
		ItemID:   itemID.Bytes(),
		Quantity: 1,
	}
	return l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("order_line_items.quantity + 1"),
		}),
	}).Create(&dto).Error
}

// Quantity looks up the stored quantity for (orderID, itemID). A missing row
// is an expected state and is reported as found == false with quantity 0.
func (l *GormLineItemLedger) Quantity(ctx context.Context, orderID, itemID kernel.UUID) (int, bool, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return 0, false, err
	}

	var dto LineItemDTO
	err := l.db.WithContext(ctx).
		Take(&dto, "order_id = ? AND item_id = ?", orderID.Bytes(), itemID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return dto.Quantity, true, nil
}

// SetQuantity overwrites the quantity of an existing row. The row must exist;
// absence here means the caller never added the item and is reported as an
// ObjectNotFoundError.
func (l *GormLineItemLedger) SetQuantity(ctx context.Context, orderID, itemID kernel.UUID, quantity int) error {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return err
	}

	result := l.db.WithContext(ctx).Model(&LineItemDTO{}).
		Where("order_id = ? AND item_id = ?", orderID.Bytes(), itemID.Bytes()).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderLineItem",
			fmt.Sprintf("%s/%s", orderID, itemID))
	}

	return nil
}

// Remove deletes the row for (orderID, itemID). Deleting an absent row is a
// no-op.
func (l *GormLineItemLedger) Remove(ctx context.Context, orderID, itemID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return err
	}

	return l.db.WithContext(ctx).
		Where("order_id = ? AND item_id = ?", orderID.Bytes(), itemID.Bytes()).
		Delete(&LineItemDTO{}).Error
}
