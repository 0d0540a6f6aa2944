package tenderrepo

import (
	"context"

	"pos/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormTenderRepository implements TenderRepository using GORM.
type GormTenderRepository struct {
	db *gorm.DB
}

// NewGormTenderRepository creates a new GORM tender repository.
func NewGormTenderRepository(db *gorm.DB) *GormTenderRepository {
	return &GormTenderRepository{db: db}
}

// Add persists the payment taken for an order. A second tender for the same
// order violates the primary key and the constraint failure propagates.
func (r *GormTenderRepository) Add(ctx context.Context, tender order.Tender) error {
	if err := tender.Validate(); err != nil {
		return err
	}

	dto := fromDomain(tender)
	return r.db.WithContext(ctx).Create(&dto).Error
}
