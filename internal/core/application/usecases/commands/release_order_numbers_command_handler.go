package commands

import (
	"context"
)

// ReleaseOrderNumbersCommandHandler frees stale display numbers.
// Only paid orders are touched: an unpaid order is still live at the counter
// and keeps its number regardless of age.
type ReleaseOrderNumbersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReleaseOrderNumbersCommandHandler creates a handler for number release.
// Requires an OrderUoWFactory for transactional persistence.
func NewReleaseOrderNumbersCommandHandler(uowFactory OrderUoWFactory) ReleaseOrderNumbersCommandHandler {
	return ReleaseOrderNumbersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command and returns how many orders had their
// numbers freed.
func (h *ReleaseOrderNumbersCommandHandler) Handle(
	ctx context.Context, cmd ReleaseOrderNumbersCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	released, err := uow.OrderRepository().ReleaseNumbersBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
