package order_test

import (
	"testing"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTender(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should record payment with change due", func(t *testing.T) {
		tender, err := order.NewTender(orderID,
			decimal.RequireFromString("25.00"),
			decimal.RequireFromString("3.40"))

		require.NoError(t, err)
		require.NoError(t, tender.Validate())
		assert.True(t, tender.OrderID().IsEqual(orderID))
		assert.True(t, tender.AmountTendered().Equal(decimal.RequireFromString("25.00")))
		assert.True(t, tender.ChangeDue().Equal(decimal.RequireFromString("3.40")))
	})

	t.Run("should allow exact payment", func(t *testing.T) {
		tender, err := order.NewTender(orderID,
			decimal.RequireFromString("21.60"), decimal.Zero)

		require.NoError(t, err)
		assert.True(t, tender.ChangeDue().IsZero())
	})

	t.Run("should reject negative amount tendered", func(t *testing.T) {
		_, err := order.NewTender(orderID,
			decimal.RequireFromString("-1.00"), decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amountTendered")
	})

	t.Run("should reject change exceeding the amount tendered", func(t *testing.T) {
		_, err := order.NewTender(orderID,
			decimal.RequireFromString("5.00"),
			decimal.RequireFromString("6.00"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "changeDue")
	})

	t.Run("should reject invalid order identity", func(t *testing.T) {
		var invalid kernel.UUID

		_, err := order.NewTender(invalid, decimal.Zero, decimal.Zero)

		require.Error(t, err)
	})
}

func TestTender_Validate(t *testing.T) {
	var tender order.Tender

	require.ErrorIs(t, tender.Validate(), order.ErrTenderIsNotConstructed)
}
