package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var (
	ErrSetItemQuantityCommandIsNotConstructed = errors.New(
		"SetItemQuantityCommand must be created via NewSetItemQuantityCommand constructor",
	)
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// SetItemQuantityCommand represents a request to overwrite the quantity of a
// line item already on an order. A quantity of zero removes the line.
type SetItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewSetItemQuantityCommand creates a command to change a line item quantity.
// Validates that both identifiers are valid and the quantity is not negative.
func NewSetItemQuantityCommand(orderID, itemID kernel.UUID, quantity int) (SetItemQuantityCommand, error) {
	command := SetItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemID(itemID),
		command.setQuantity(quantity),
	); err != nil {
		return SetItemQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetItemQuantityCommandIsNotConstructed if validation fails.
func (c SetItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetItemQuantityCommandIsNotConstructed)
}

// OrderID returns the identity of the order.
func (c SetItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identity of the catalog item.
func (c SetItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the new quantity for the line.
func (c SetItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetItemQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetItemQuantityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *SetItemQuantityCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}

	c.quantity = quantity
	return nil
}
