package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to ring one unit of a catalog item onto
// an order. Ringing the same item again raises its quantity by one.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item to an order.
// Validates that both identifiers are valid.
func NewAddItemCommand(orderID, itemID kernel.UUID) (AddItemCommand, error) {
	command := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemID(itemID),
	); err != nil {
		return AddItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the identity of the order being rung up.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identity of the catalog item.
func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
