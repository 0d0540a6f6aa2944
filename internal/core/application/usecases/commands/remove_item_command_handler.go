package commands

import (
	"context"
)

// RemoveItemCommandHandler handles voiding line items off orders.
type RemoveItemCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRemoveItemCommandHandler creates a handler for item removal.
// Requires a LedgerUoWFactory for transactional persistence.
func NewRemoveItemCommandHandler(uowFactory LedgerUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove item command.
// Removal of an absent line is a no-op, so repeated voids are safe.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LineItemLedger().Remove(ctx, cmd.OrderID(), cmd.ItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
