// Package tenderrepo persists payment records. One tender row exists per paid
// order; the primary key on order_id enforces it.
package tenderrepo

import (
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TenderDTO represents the payment row for an order.
type TenderDTO struct {
	OrderID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AmountTendered decimal.Decimal `gorm:"type:numeric(12,2)"`
	ChangeDue      decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for tender rows.
func (TenderDTO) TableName() string {
	return "tender"
}

// fromDomain converts a tender value object to its database representation.
func fromDomain(tender order.Tender) TenderDTO {
	return TenderDTO{
		OrderID:        tender.OrderID().Bytes(),
		AmountTendered: tender.AmountTendered(),
		ChangeDue:      tender.ChangeDue(),
	}
}
