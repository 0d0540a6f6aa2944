package order

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrNumberAlreadyAssigned is returned when assigning a display number to an
	// order that already has one. Assignment happens exactly once per order.
	ErrNumberAlreadyAssigned = errors.New("order number is already assigned")
)

// Order represents a customer order at the register. It is the aggregate root
// that manages the order identity and the lifecycle of its display number.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier
//   - The display number is nil until assigned, and is assigned at most once
//   - The number and its assignment timestamp are either both set or both nil
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the permanent storage identity of the order
	id kernel.UUID

	// number is the cyclic display number (nil until assigned)
	number *Number

	// numberAssignedAt records when the display number was stamped (nil until assigned)
	numberAssignedAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new empty Order: no display number, no line items yet.
// This is the state an order is in right after accession, before any item has
// been scanned.
func NewOrder(id kernel.UUID) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := o.setID(id); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. number and
// numberAssignedAt must either both be set or both be nil; a half-assigned
// state is rejected because it cannot occur through the aggregate's own
// behavior.
func RestoreOrder(id kernel.UUID, number *Number, numberAssignedAt *time.Time) (*Order, error) {
	o, err := NewOrder(id)
	if err != nil {
		return nil, err
	}

	if (number == nil) != (numberAssignedAt == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("display number and assignment timestamp must be set together"))
	}

	if number != nil {
		if err = number.Validate(); err != nil {
			return nil, err
		}
		n := *number
		at := *numberAssignedAt
		o.number = &n
		o.numberAssignedAt = &at
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's permanent storage identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the assigned display number, or nil if none has been assigned yet.
func (o *Order) Number() *Number {
	return o.number
}

// NumberAssignedAt returns when the display number was assigned, or nil if it
// has not been.
func (o *Order) NumberAssignedAt() *time.Time {
	return o.numberAssignedAt
}

// HasNumber reports whether a display number has been assigned.
func (o *Order) HasNumber() bool {
	return o.number != nil
}

// AssignNumber stamps the display number and its assignment timestamp on the
// order. The number is assigned exactly once; a second call returns
// ErrNumberAlreadyAssigned, and callers that want idempotent assignment must
// check HasNumber first and reuse the existing number.
func (o *Order) AssignNumber(n Number, at time.Time) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("numberAssignedAt")
	}
	if o.HasNumber() {
		return ErrNumberAlreadyAssigned
	}

	o.number = &n
	o.numberAssignedAt = &at
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}
