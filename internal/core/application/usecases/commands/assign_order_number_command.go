package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrAssignOrderNumberCommandIsNotConstructed = errors.New(
	"AssignOrderNumberCommand must be created via NewAssignOrderNumberCommand constructor",
)

// AssignOrderNumberCommand represents a request to stamp a display number on
// an order. Assignment is idempotent: repeating the command for an order that
// already holds a number returns that number unchanged.
type AssignOrderNumberCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderNumberCommand creates a command to assign a display number.
// Validates that the order ID is valid.
func NewAssignOrderNumberCommand(orderID kernel.UUID) (AssignOrderNumberCommand, error) {
	command := AssignOrderNumberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return AssignOrderNumberCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderNumberCommandIsNotConstructed if validation fails.
func (c AssignOrderNumberCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderNumberCommandIsNotConstructed)
}

// OrderID returns the identity of the order receiving a number.
func (c AssignOrderNumberCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignOrderNumberCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
