package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// TaxRateProvider exposes the current sales tax rate as a dimensionless
// fraction (0.08 for 8%). The rate is read at total-computation time on every
// call; consumers must not cache it.
type TaxRateProvider interface {
	TaxRate(ctx context.Context) (decimal.Decimal, error)
}
