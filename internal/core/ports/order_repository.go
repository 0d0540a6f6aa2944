// Package ports defines the contracts between the application core and its
// external collaborators: the relational store, the item catalog, and the
// tax-rate configuration. These interfaces establish dependency inversion
// and testability boundaries for the use cases.
package ports

import (
	"context"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its permanent identity.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// MostRecentlyAssignedNumber returns the display number of the latest
	// assignment across all orders. Orders sharing an identical assignment
	// timestamp are tie-broken deterministically by highest order ID.
	// found is false when no order has ever been assigned a number; that is
	// an expected state, not an error.
	MostRecentlyAssignedNumber(ctx context.Context) (number int, found bool, err error)

	// ReleaseNumbersBefore frees the display numbers of tendered orders whose
	// numbers were assigned before cutoff, making those numbers eligible for
	// reuse. Returns how many orders were released.
	ReleaseNumbersBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
