package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to void a line item off an order.
// Removing an item that is not on the order is a no-op.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove an item from an order.
// Validates that both identifiers are valid.
func NewRemoveItemCommand(orderID, itemID kernel.UUID) (RemoveItemCommand, error) {
	command := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemID(itemID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveItemCommandIsNotConstructed if validation fails.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OrderID returns the identity of the order.
func (c RemoveItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identity of the catalog item being voided.
func (c RemoveItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RemoveItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
