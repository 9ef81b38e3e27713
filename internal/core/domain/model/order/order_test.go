package order_test

import (
	"testing"
	"time"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	createdAt := time.Date(2026, time.August, 23, 12, 0, 0, 0, time.UTC)

	t.Run("should create valid pending order", func(t *testing.T) {
		o, err := order.NewOrder(validID, "table1", createdAt)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "table1", o.TableID())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should default zero creation time to now", func(t *testing.T) {
		before := time.Now()
		o, err := order.NewOrder(validID, "table2", time.Time{})

		require.NoError(t, err)
		assert.False(t, o.CreatedAt().Before(before))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "table1", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty table", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "tableId")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "tableId")
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	createdAt := time.Date(2026, time.August, 23, 12, 0, 0, 0, time.UTC)

	t.Run("should restore order with terminal status", func(t *testing.T) {
		o, err := order.RestoreOrder(validID, "table3", createdAt, order.Delivered)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(validID, "table3", createdAt, order.Unknown)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		o := &order.Order{}

		require.Error(t, o.Validate())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	newPending := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), "table1", time.Now())
		require.NoError(t, err)
		return o
	}

	t.Run("pending to delivered", func(t *testing.T) {
		o := newPending(t)

		require.NoError(t, o.Start())
		assert.Equal(t, order.InProgress, o.Status())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("cannot start twice", func(t *testing.T) {
		o := newPending(t)

		require.NoError(t, o.Start())
		require.Error(t, o.Start())
	})

	t.Run("cannot deliver pending order", func(t *testing.T) {
		o := newPending(t)

		require.Error(t, o.Deliver())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cancel pending order", func(t *testing.T) {
		o := newPending(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancel interrupted delivery", func(t *testing.T) {
		o := newPending(t)

		require.NoError(t, o.Start())
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cannot cancel delivered order", func(t *testing.T) {
		o := newPending(t)

		require.NoError(t, o.Start())
		require.NoError(t, o.Deliver())
		require.Error(t, o.Cancel())
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := order.NewOrder(id, "table1", time.Now())
	b, _ := order.NewOrder(id, "table2", time.Now())
	c, _ := order.NewOrder(kernel.NewUUID(), "table1", time.Now())

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
