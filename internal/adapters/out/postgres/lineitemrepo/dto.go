// Package lineitemrepo persists the per-order line item quantities, keyed by
// (order ID, item ID). Rows only exist with a positive quantity: increments
// upsert atomically and a quantity of zero is expressed by deleting the row.
package lineitemrepo

import (
	"github.com/google/uuid"
)

// LineItemDTO represents a ledger row: one scanned item on one order.
type LineItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity int
}

// TableName specifies the database table name for line item rows.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}
