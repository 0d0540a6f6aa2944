package order_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create an empty order with no display number", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Nil(t, o.Number())
		assert.Nil(t, o.NumberAssignedAt())
		assert.False(t, o.HasNumber())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	number, _ := order.NewNumber(17)
	assignedAt := time.Date(2015, 11, 1, 14, 30, 0, 0, time.UTC)

	t.Run("should restore an order without a number", func(t *testing.T) {
		o, err := order.RestoreOrder(id, nil, nil)

		require.NoError(t, err)
		assert.False(t, o.HasNumber())
	})

	t.Run("should restore an order with a number and timestamp", func(t *testing.T) {
		o, err := order.RestoreOrder(id, &number, &assignedAt)

		require.NoError(t, err)
		require.True(t, o.HasNumber())
		assert.Equal(t, 17, o.Number().Value())
		assert.Equal(t, assignedAt, *o.NumberAssignedAt())
	})

	t.Run("should reject a number without a timestamp", func(t *testing.T) {
		o, err := order.RestoreOrder(id, &number, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "must be set together")
	})

	t.Run("should reject a timestamp without a number", func(t *testing.T) {
		o, err := order.RestoreOrder(id, nil, &assignedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "must be set together")
	})

	t.Run("should reject an out-of-range restored number", func(t *testing.T) {
		bad := order.Number(200)

		o, err := order.RestoreOrder(id, &bad, &assignedAt)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_AssignNumber(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)
		return o
	}

	t.Run("should stamp the number and timestamp together", func(t *testing.T) {
		o := newOrder(t)
		number, _ := order.NewNumber(5)
		at := time.Now().UTC()

		err := o.AssignNumber(number, at)

		require.NoError(t, err)
		require.True(t, o.HasNumber())
		assert.Equal(t, 5, o.Number().Value())
		assert.Equal(t, at, *o.NumberAssignedAt())
	})

	t.Run("should refuse a second assignment", func(t *testing.T) {
		o := newOrder(t)
		first, _ := order.NewNumber(5)
		second, _ := order.NewNumber(6)

		require.NoError(t, o.AssignNumber(first, time.Now().UTC()))
		err := o.AssignNumber(second, time.Now().UTC())

		require.ErrorIs(t, err, order.ErrNumberAlreadyAssigned)
		assert.Equal(t, 5, o.Number().Value())
	})

	t.Run("should reject an invalid number", func(t *testing.T) {
		o := newOrder(t)

		err := o.AssignNumber(order.Number(0), time.Now().UTC())

		require.Error(t, err)
		assert.False(t, o.HasNumber())
	})

	t.Run("should reject a zero timestamp", func(t *testing.T) {
		o := newOrder(t)
		number, _ := order.NewNumber(5)

		err := o.AssignNumber(number, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "numberAssignedAt")
		assert.False(t, o.HasNumber())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := order.NewOrder(id)
	b, _ := order.NewOrder(id)
	c, _ := order.NewOrder(kernel.NewUUID())

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
