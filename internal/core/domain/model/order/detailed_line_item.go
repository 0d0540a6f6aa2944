package order

import (
	"pos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DetailedLineItem is a read model: a ledger line enriched with catalog
// pricing. The extended price is computed by the catalog collaborator as
// unit price times quantity and is not recomputed by consumers.
type DetailedLineItem struct {
	ItemID        kernel.UUID
	Name          string
	Quantity      int
	UnitPrice     decimal.Decimal
	ExtendedPrice decimal.Decimal
}
