package commands

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/core/ports"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderHasNoItems is returned when taking payment for an order with no
	// line items. An empty order has no total due, so there is nothing to pay.
	ErrOrderHasNoItems = errors.New("order has no items to pay for")

	// ErrAmountTenderedIsInsufficient is returned when the amount tendered does
	// not cover the total due.
	ErrAmountTenderedIsInsufficient = errors.New("amount tendered is less than the total due")
)

// RecordPaymentCommandHandler handles taking payment for orders.
// The total due is computed at payment time from the order's ledger, catalog
// pricing, and the current tax rate; the change due is the tender minus the
// total.
type RecordPaymentCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.Catalog
	taxRates   ports.TaxRateProvider
	calculator services.TotalCalculator
}

// NewRecordPaymentCommandHandler creates a handler for payment operations.
// Requires a UoWFactory for transactional persistence, a Catalog and
// TaxRateProvider to price the order, and the TotalCalculator domain service.
func NewRecordPaymentCommandHandler(
	uowFactory UoWFactory,
	catalog ports.Catalog,
	taxRates ports.TaxRateProvider,
	calculator services.TotalCalculator,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		taxRates:   taxRates,
		calculator: calculator,
	}
}

// Handle processes the payment command and returns the change due.
// Fails if the order does not exist, has no items, or the tender does not
// cover the total.
func (h *RecordPaymentCommandHandler) Handle(
	ctx context.Context, cmd RecordPaymentCommand,
) (decimal.Decimal, error) {
	if err := cmd.Validate(); err != nil {
		return decimal.Decimal{}, err
	}

	items, err := h.catalog.DetailedLineItems(ctx, cmd.OrderID())
	if err != nil {
		return decimal.Decimal{}, err
	}

	taxRate, err := h.taxRates.TaxRate(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	total, err := h.calculator.TotalDue(items, taxRate)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if total == nil {
		return decimal.Decimal{}, ErrOrderHasNoItems
	}

	if cmd.AmountTendered().LessThan(*total) {
		return decimal.Decimal{}, ErrAmountTenderedIsInsufficient
	}
	changeDue := cmd.AmountTendered().Sub(*total)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return decimal.Decimal{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return decimal.Decimal{}, err
	}

	tender, err := order.NewTender(cmd.OrderID(), cmd.AmountTendered(), changeDue)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if err = uow.TenderRepository().Add(ctx, tender); err != nil {
		return decimal.Decimal{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return decimal.Decimal{}, err
	}

	return changeDue, nil
}
