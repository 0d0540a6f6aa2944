// Package settings provides adapters for configuration-sourced values the
// core reads through ports.
package settings

import (
	"context"

	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// StaticTaxRateProvider serves a sales tax rate fixed at startup from
// configuration. The rate is a dimensionless fraction, so 0.08 means 8%.
type StaticTaxRateProvider struct {
	rate decimal.Decimal
}

// NewStaticTaxRateProvider creates a provider for the given rate.
// A negative rate is rejected.
func NewStaticTaxRateProvider(rate decimal.Decimal) (*StaticTaxRateProvider, error) {
	if rate.IsNegative() {
		return nil, errs.NewValueIsInvalidError("salesTaxRate")
	}

	return &StaticTaxRateProvider{rate: rate}, nil
}

// TaxRate returns the configured sales tax rate.
func (p *StaticTaxRateProvider) TaxRate(_ context.Context) (decimal.Decimal, error) {
	return p.rate, nil
}
