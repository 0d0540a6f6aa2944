package ports

import (
	"context"

	"pos/internal/core/domain/model/order"
)

// TenderRepository defines the persistence contract for payment records.
// At most one tender exists per order; inserting a second one violates the
// storage constraint and the failure propagates to the caller unchanged.
type TenderRepository interface {
	// Add persists the payment taken for an order.
	Add(ctx context.Context, tender order.Tender) error
}
