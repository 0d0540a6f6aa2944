package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
	ErrAmountTenderedIsNegative = errors.New("amount tendered must not be negative")
)

// RecordPaymentCommand represents a request to take payment for an order.
// The amount tendered is what the customer handed over; the handler computes
// the change due against the order's total.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	amountTendered decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record payment for an order.
// Validates that the order ID is valid and the amount is not negative.
func NewRecordPaymentCommand(orderID kernel.UUID, amountTendered decimal.Decimal) (RecordPaymentCommand, error) {
	command := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAmountTendered(amountTendered),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordPaymentCommandIsNotConstructed if validation fails.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the identity of the order being paid.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AmountTendered returns the amount the customer handed over.
func (c RecordPaymentCommand) AmountTendered() decimal.Decimal {
	return c.amountTendered
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setAmountTendered(amountTendered decimal.Decimal) error {
	if amountTendered.IsNegative() {
		return ErrAmountTenderedIsNegative
	}

	c.amountTendered = amountTendered
	return nil
}
