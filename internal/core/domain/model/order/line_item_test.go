package order_test

import (
	"testing"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	orderID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	t.Run("should create a line with a positive quantity", func(t *testing.T) {
		li, err := order.NewLineItem(orderID, itemID, 3)

		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.True(t, li.OrderID().IsEqual(orderID))
		assert.True(t, li.ItemID().IsEqual(itemID))
		assert.Equal(t, 3, li.Quantity())
	})

	t.Run("should reject quantity zero", func(t *testing.T) {
		_, err := order.NewLineItem(orderID, itemID, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := order.NewLineItem(orderID, itemID, -2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		var invalid kernel.UUID

		_, err := order.NewLineItem(invalid, itemID, 1)
		require.Error(t, err)

		_, err = order.NewLineItem(orderID, invalid, 1)
		require.Error(t, err)
	})
}

func TestLineItem_Validate(t *testing.T) {
	var li order.LineItem

	require.ErrorIs(t, li.Validate(), order.ErrLineItemIsNotConstructed)
}
