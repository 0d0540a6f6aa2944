package commands

import (
	"context"
	"fmt"

	"pos/internal/pkg/errs"
)

// SetItemQuantityCommandHandler handles overwriting line item quantities.
// Unlike adding an item, the target line must already exist: changing the
// quantity of an item never rung on the order is invalid input.
type SetItemQuantityCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewSetItemQuantityCommandHandler creates a handler for quantity changes.
// Requires a LedgerUoWFactory for transactional persistence.
func NewSetItemQuantityCommandHandler(uowFactory LedgerUoWFactory) SetItemQuantityCommandHandler {
	return SetItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change command.
// A quantity of zero removes the line from the order instead of leaving a
// zero-quantity row behind.
func (h *SetItemQuantityCommandHandler) Handle(ctx context.Context, cmd SetItemQuantityCommand) error {
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

	ledger := uow.LineItemLedger()
	_, found, err := ledger.Quantity(ctx, cmd.OrderID(), cmd.ItemID())
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("orderLineItem",
			fmt.Sprintf("%s/%s", cmd.OrderID(), cmd.ItemID()))
	}

	if cmd.Quantity() == 0 {
		err = ledger.Remove(ctx, cmd.OrderID(), cmd.ItemID())
	} else {
		err = ledger.SetQuantity(ctx, cmd.OrderID(), cmd.ItemID(), cmd.Quantity())
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
