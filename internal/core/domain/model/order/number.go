package order

import (
	"pos/internal/pkg/errs"
)

const (
	// MinNumber is the smallest display number that can be assigned to an order.
	MinNumber Number = 1

	// MaxNumber is the largest display number; the sequence wraps back to
	// MinNumber after it.
	MaxNumber Number = 100
)

// Number is the small cyclic display identifier assigned to an order when it is
// first accessioned at the register. It is distinct from the order's permanent
// storage identity and cycles through the closed range [MinNumber, MaxNumber].
//
// The zero value is invalid; construct a Number via NewNumber or NextNumber.
type Number int

// NewNumber creates a Number, validating it lies within [MinNumber, MaxNumber].
func NewNumber(value int) (Number, error) {
	n := Number(value)
	if err := n.Validate(); err != nil {
		return 0, err
	}
	return n, nil
}

// NextNumber returns the number that follows the most recently assigned one.
// A mostRecent of 0 means no number has ever been assigned and the sequence
// starts at MinNumber. Any other value outside [MinNumber, MaxNumber] is
// rejected.
func NextNumber(mostRecent int) (Number, error) {
	if mostRecent == 0 {
		return MinNumber, nil
	}

	n, err := NewNumber(mostRecent)
	if err != nil {
		return 0, err
	}
	return n.Next(), nil
}

// Next returns the number following n in the cyclic range, wrapping to
// MinNumber after MaxNumber.
func (n Number) Next() Number {
	if n >= MaxNumber {
		return MinNumber
	}
	return n + 1
}

// Value returns the number as a plain int.
func (n Number) Value() int {
	return int(n)
}

// Validate checks that the number lies within the cyclic range.
func (n Number) Validate() error {
	if n < MinNumber || n > MaxNumber {
		return errs.NewValueIsOutOfRangeError("orderNumber", int(n), int(MinNumber), int(MaxNumber))
	}
	return nil
}
