package commands

import (
	"context"
	"log/slog"

	"pos/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// New orders carry no display number until one is assigned at the register.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
// Uses a transaction to ensure the order is properly persisted or rolled back
// on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	newOrder, err := order.NewOrder(cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Created order", "orderId", cmd.OrderID().String())

	return nil
}
