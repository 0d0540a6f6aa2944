package order

import (
	"errors"
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// MinQuantity is the smallest quantity a stored line item may carry. A line
// with quantity zero is deleted, never stored.
const MinQuantity = 1

// LineItem is a scanned item on an order, keyed by (order ID, item ID) with a
// positive quantity. It is a value object: quantity changes are modeled by
// constructing a new LineItem.
type LineItem struct {
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	isConstructed bool
}

// NewLineItem creates a LineItem, enforcing that the quantity is at least
// MinQuantity. A caller holding a zero quantity must remove the line instead.
func NewLineItem(orderID kernel.UUID, itemID kernel.UUID, quantity int) (LineItem, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return LineItem{}, err
	}

	if quantity < MinQuantity {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than %d", quantity, MinQuantity))
	}

	return LineItem{
		orderID:       orderID,
		itemID:        itemID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// OrderID returns the identity of the order the line belongs to.
func (li LineItem) OrderID() kernel.UUID {
	return li.orderID
}

// ItemID returns the identity of the catalog item.
func (li LineItem) ItemID() kernel.UUID {
	return li.itemID
}

// Quantity returns the line quantity; always at least MinQuantity.
func (li LineItem) Quantity() int {
	return li.quantity
}
