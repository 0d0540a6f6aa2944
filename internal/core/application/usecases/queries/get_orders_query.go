// Package queries contains read operations against the order store.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return response models shaped for presentation, never
// domain aggregates.
package queries

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// OrderFilter narrows a GetOrdersQuery. Nil fields match everything; set
// fields must all match.
type OrderFilter struct {
	// OrderID selects a single order by its permanent identity.
	OrderID *kernel.UUID

	// OrderNumber selects orders currently holding this display number.
	OrderNumber *int
}

// GetOrdersQuery retrieves orders with their line items, running total, and
// payment state.
//
// Example:
//
//	query, err := NewGetOrdersQuery(OrderFilter{})
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s, total %v\n", o.ID, o.TotalDue)
//	}
type GetOrdersQuery struct {
	filter OrderFilter

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for orders matching the filter.
// An order number filter must lie within the display number range.
func NewGetOrdersQuery(filter OrderFilter) (GetOrdersQuery, error) {
	if filter.OrderID != nil {
		if err := filter.OrderID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if filter.OrderNumber != nil {
		if _, err := order.NewNumber(*filter.OrderNumber); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Filter returns the query's order filter.
func (q GetOrdersQuery) Filter() OrderFilter {
	return q.filter
}

// GetOrdersQueryResponse represents one order as presented to the register:
// identity, display number, ledger lines, running total, and payment if taken.
type GetOrdersQueryResponse struct {
	ID kernel.UUID

	// Number is nil until a display number has been assigned.
	Number *int

	// NumberAssignedAt is the assignment timestamp formatted for display,
	// nil until a number has been assigned.
	NumberAssignedAt *string

	Items []LineItemResponse

	// TotalDue is the tax-inclusive total, nil for an order with no items.
	TotalDue *decimal.Decimal

	// Tender is nil until payment has been recorded.
	Tender *TenderResponse
}

// LineItemResponse represents one ledger line with catalog pricing.
type LineItemResponse struct {
	ItemID        kernel.UUID
	Name          string
	Quantity      int
	UnitPrice     decimal.Decimal
	ExtendedPrice decimal.Decimal
}

// TenderResponse represents the payment taken for an order.
type TenderResponse struct {
	AmountTendered decimal.Decimal
	ChangeDue      decimal.Decimal
}
