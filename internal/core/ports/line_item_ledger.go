package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"
)

// LineItemLedger defines the persistence contract for the per-order line item
// quantities, keyed by (order ID, item ID).
//
// Absence of a row is an expected state everywhere in this interface: it is
// reported through the found flag or treated as a no-op, never signaled as an
// error.
type LineItemLedger interface {
	// Increment raises the quantity for (orderID, itemID) by one, creating
	// the row with quantity 1 if it does not exist. The upsert is atomic with
	// respect to concurrent increments of the same key.
	Increment(ctx context.Context, orderID, itemID kernel.UUID) error

	// Quantity looks up the stored quantity for (orderID, itemID).
	// found is false when no row exists; quantity is 0 in that case.
	Quantity(ctx context.Context, orderID, itemID kernel.UUID) (quantity int, found bool, err error)

	// SetQuantity overwrites the quantity of an existing row. It does not
	// create the row: callers must have added the item first. Returns an
	// ObjectNotFoundError when no row exists.
	SetQuantity(ctx context.Context, orderID, itemID kernel.UUID, quantity int) error

	// Remove deletes the row for (orderID, itemID). Removing an absent row
	// is a no-op, not an error.
	Remove(ctx context.Context, orderID, itemID kernel.UUID) error
}
