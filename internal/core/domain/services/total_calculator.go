package services

import (
	"fmt"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TotalCalculator is a domain service that computes the tax-inclusive total
// due for an order's detailed line items.
//
// Business rules:
//   - An order with no line items has no total: nil, not zero. "Nothing
//     ordered" and "$0 ordered" are different states.
//   - The total is the sum of the extended prices plus sum times the tax rate.
//   - All arithmetic is exact decimal; binary floating point never touches
//     money.
//
// The tax rate is supplied by the caller on every invocation. The calculator
// neither caches nor owns it.
type TotalCalculator struct{}

// NewTotalCalculator creates a new TotalCalculator instance.
func NewTotalCalculator() TotalCalculator {
	return TotalCalculator{}
}

// TotalDue returns the price of all the items including sales tax, or nil if
// there aren't any items. taxRate is a dimensionless fraction (0.08 for 8%)
// and must not be negative.
func (c TotalCalculator) TotalDue(items []order.DetailedLineItem, taxRate decimal.Decimal) (*decimal.Decimal, error) {
	if taxRate.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("taxRate",
			fmt.Errorf("%s is negative", taxRate))
	}

	if len(items) == 0 {
		return nil, nil
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.ExtendedPrice)
	}

	total = total.Add(total.Mul(taxRate))
	return &total, nil
}
