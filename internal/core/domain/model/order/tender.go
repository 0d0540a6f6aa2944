package order

import (
	"errors"
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrTenderIsNotConstructed is returned when a Tender was not created through
// the NewTender factory method.
var ErrTenderIsNotConstructed = errors.New("Tender must be created via NewTender constructor")

// Tender records the payment taken for an order: the amount the customer
// handed over and the change due back. At most one tender exists per order,
// and only once payment has been recorded.
type Tender struct {
	orderID        kernel.UUID
	amountTendered decimal.Decimal
	changeDue      decimal.Decimal

	isConstructed bool
}

// NewTender creates a Tender. The amount tendered must not be negative and the
// change due must lie between zero and the amount tendered.
func NewTender(orderID kernel.UUID, amountTendered, changeDue decimal.Decimal) (Tender, error) {
	if err := orderID.Validate(); err != nil {
		return Tender{}, err
	}

	if amountTendered.IsNegative() {
		return Tender{}, errs.NewValueIsInvalidErrorWithCause("amountTendered",
			fmt.Errorf("%s is negative", amountTendered))
	}

	if changeDue.IsNegative() || changeDue.GreaterThan(amountTendered) {
		return Tender{}, errs.NewValueIsInvalidErrorWithCause("changeDue",
			fmt.Errorf("%s is not between 0 and %s", changeDue, amountTendered))
	}

	return Tender{
		orderID:        orderID,
		amountTendered: amountTendered,
		changeDue:      changeDue,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Tender was created through NewTender.
func (t Tender) Validate() error {
	if !t.isConstructed {
		return ErrTenderIsNotConstructed
	}
	return nil
}

// OrderID returns the identity of the paid order.
func (t Tender) OrderID() kernel.UUID {
	return t.orderID
}

// AmountTendered returns the amount the customer handed over.
func (t Tender) AmountTendered() decimal.Decimal {
	return t.amountTendered
}

// ChangeDue returns the change owed back to the customer.
func (t Tender) ChangeDue() decimal.Decimal {
	return t.changeDue
}
