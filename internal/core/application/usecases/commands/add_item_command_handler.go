package commands

import (
	"context"

	"pos/internal/core/ports"
)

// AddItemCommandHandler handles ringing items onto an order.
// An unknown item is invalid input: the catalog lookup fails before any
// ledger write happens. The quantity bump itself is an atomic upsert, so
// concurrent rings of the same item on the same order never lose an update.
type AddItemCommandHandler struct {
	uowFactory LedgerUoWFactory
	catalog    ports.Catalog
}

// NewAddItemCommandHandler creates a handler for adding items to orders.
// Requires a LedgerUoWFactory for transactional persistence and a Catalog for
// item existence checks.
func NewAddItemCommandHandler(uowFactory LedgerUoWFactory, catalog ports.Catalog) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the add item command.
// Verifies the item exists in the catalog and the order exists, then raises
// the line quantity by one, creating the line at quantity one if the item has
// not been rung on this order before.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.catalog.UnitPrice(ctx, cmd.ItemID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.LineItemLedger().Increment(ctx, cmd.OrderID(), cmd.ItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
