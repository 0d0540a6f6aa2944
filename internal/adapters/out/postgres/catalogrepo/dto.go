// Package catalogrepo implements the catalog collaborator over the items
// table: unit price lookups and the join that enriches an order's ledger
// lines with pricing.
package catalogrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents a sellable catalog item.
type ItemDTO struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name  string          `gorm:"not null"`
	Price decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "items"
}
