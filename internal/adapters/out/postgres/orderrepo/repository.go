package orderrepo

import (
	"context"
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The number and assignment
// timestamp are written explicitly so that a released (nil) pair is persisted
// as NULL rather than skipped.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"order_number":       dto.OrderNumber,
			"number_assigned_at": dto.NumberAssignedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// MostRecentlyAssignedNumber returns the display number of the latest
// assignment. Equal timestamps are tie-broken by highest order ID so the
// result is deterministic. Absence of any assignment is reported through the
// found flag, not as an error.
func (r *GormOrderRepository) MostRecentlyAssignedNumber(ctx context.Context) (int, bool, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("order_number IS NOT NULL").
		Order("number_assigned_at DESC, id DESC").
		Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return *dto.OrderNumber, true, nil
}

// ReleaseNumbersBefore frees the display numbers of tendered orders whose
// numbers were assigned before cutoff.
func (r *GormOrderRepository) ReleaseNumbersBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET order_number = NULL, number_assigned_at = NULL
		WHERE number_assigned_at < ?
		  AND id IN (SELECT order_id FROM tender)
	`, cutoff)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
