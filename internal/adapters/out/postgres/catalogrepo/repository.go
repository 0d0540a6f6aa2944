package catalogrepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormCatalog implements the Catalog port using GORM.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a new GORM catalog.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// UnitPrice returns the unit price of a catalog item. An unknown item is
// invalid input and reported as an ObjectNotFoundError.
func (c *GormCatalog) UnitPrice(ctx context.Context, itemID kernel.UUID) (decimal.Decimal, error) {
	if err := itemID.Validate(); err != nil {
		return decimal.Decimal{}, err
	}

	var dto ItemDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Decimal{}, errs.NewObjectNotFoundError("item", itemID.String())
		}
		return decimal.Decimal{}, err
	}

	return dto.Price, nil
}

// DetailedLineItems returns the order's ledger lines joined with catalog
// pricing, each carrying its extended price. An order with no lines yields an
// empty slice.
func (c *GormCatalog) DetailedLineItems(ctx context.Context, orderID kernel.UUID) ([]order.DetailedLineItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.DetailedLineItem, 0)

	rows, err := c.db.WithContext(ctx).Raw(`
		SELECT
			items.id,
			items.name,
			order_line_items.quantity,
			items.price
		FROM order_line_items
		JOIN items ON items.id = order_line_items.item_id
		WHERE order_line_items.order_id = ?
		ORDER BY items.name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var quantity int
		var price decimal.Decimal

		if err = rows.Scan(&id, &name, &quantity, &price); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, order.DetailedLineItem{
			ItemID:        itemID,
			Name:          name,
			Quantity:      quantity,
			UnitPrice:     price,
			ExtendedPrice: price.Mul(decimal.NewFromInt(int64(quantity))),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
