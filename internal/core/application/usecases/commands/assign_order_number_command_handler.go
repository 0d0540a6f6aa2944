package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pos/internal/core/domain/model/order"
)

// AssignOrderNumberCommandHandler allocates cyclic display numbers.
// The next number is derived from the most recently assigned one, so two
// concurrent allocations racing on the same read would hand out the same
// number. A process-wide mutex serializes the read-derive-write sequence;
// the database transaction then makes each allocation atomic.
type AssignOrderNumberCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger

	// mu is shared across copies of the handler
	mu *sync.Mutex
}

// NewAssignOrderNumberCommandHandler creates a handler for display number
// assignment. Requires an OrderUoWFactory for transactional persistence.
func NewAssignOrderNumberCommandHandler(
	uowFactory OrderUoWFactory, logger *slog.Logger,
) AssignOrderNumberCommandHandler {
	return AssignOrderNumberCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "assign_order_number_handler"),
		mu:         &sync.Mutex{},
	}
}

// Handle assigns the next display number to the order and returns it.
// If the order already holds a number, that number is returned and nothing is
// written. The sequence restarts at the minimum after the maximum is reached.
func (h *AssignOrderNumberCommandHandler) Handle(
	ctx context.Context, cmd AssignOrderNumberCommand,
) (order.Number, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	if ord.HasNumber() {
		return *ord.Number(), nil
	}

	mostRecent, _, err := orderRepo.MostRecentlyAssignedNumber(ctx)
	if err != nil {
		return 0, err
	}

	next, err := order.NextNumber(mostRecent)
	if err != nil {
		return 0, err
	}

	if err = ord.AssignNumber(next, time.Now().UTC()); err != nil {
		return 0, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.logger.InfoContext(ctx, "Assigned order number",
		"orderId", cmd.OrderID().String(), "number", next.Value())

	return next, nil
}
