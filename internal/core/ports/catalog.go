package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Catalog is the item lookup collaborator. It owns item names and unit prices
// and computes extended prices; the order core never recomputes them.
type Catalog interface {
	// UnitPrice returns the unit price of a catalog item.
	// Returns an ObjectNotFoundError for an unknown item: referencing an item
	// that does not exist is invalid input, not an expected absence.
	UnitPrice(ctx context.Context, itemID kernel.UUID) (decimal.Decimal, error)

	// DetailedLineItems returns the order's ledger lines joined with catalog
	// pricing, each carrying its extended price (unit price times quantity).
	// An order with no lines yields an empty slice.
	DetailedLineItems(ctx context.Context, orderID kernel.UUID) ([]order.DetailedLineItem, error)
}
