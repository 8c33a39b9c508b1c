package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"Warehouse 4", "12 Elm Street", "electronics",
		3, false, time.Now(),
	)
	require.NoError(t, err)
	return o
}

func createDriver(t *testing.T, location string) *dispatch.Driver {
	t.Helper()
	d, err := dispatch.NewDriver(kernel.NewUUID(), kernel.NewUUID(), location)
	require.NoError(t, err)
	return d
}

func TestDriverDispatcher_Dispatch(t *testing.T) {
	t.Run("should pick the first available driver and reserve it", func(t *testing.T) {
		pendingOrder := createPendingOrder(t)
		first := createDriver(t, "Depot 1")
		second := createDriver(t, "Depot 2")
		dispatcher := services.NewDriverDispatcher()

		result, err := dispatcher.Dispatch(pendingOrder, []*dispatch.Driver{first, second})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsEqual(first))
		assert.Equal(t, dispatch.DriverBusy, first.Status())
		assert.Equal(t, dispatch.DriverAvailable, second.Status())
	})

	t.Run("should skip busy drivers", func(t *testing.T) {
		pendingOrder := createPendingOrder(t)
		busy := createDriver(t, "Depot 1")
		require.NoError(t, busy.MarkBusy())
		free := createDriver(t, "Depot 2")
		dispatcher := services.NewDriverDispatcher()

		result, err := dispatcher.Dispatch(pendingOrder, []*dispatch.Driver{busy, free})

		require.NoError(t, err)
		assert.True(t, result.IsEqual(free))
	})

	t.Run("should return ErrDriverNotFound when every driver is busy", func(t *testing.T) {
		pendingOrder := createPendingOrder(t)
		busy := createDriver(t, "Depot 1")
		require.NoError(t, busy.MarkBusy())
		dispatcher := services.NewDriverDispatcher()

		_, err := dispatcher.Dispatch(pendingOrder, []*dispatch.Driver{busy})

		require.ErrorIs(t, err, services.ErrDriverNotFound)
	})

	t.Run("should return ErrDriverNotFound for an empty roster", func(t *testing.T) {
		pendingOrder := createPendingOrder(t)
		dispatcher := services.NewDriverDispatcher()

		_, err := dispatcher.Dispatch(pendingOrder, nil)

		require.ErrorIs(t, err, services.ErrDriverNotFound)
	})

	t.Run("should refuse orders that cannot be assigned", func(t *testing.T) {
		assignedOrder := createPendingOrder(t)
		require.NoError(t, assignedOrder.Assign(kernel.NewUUID(), "428137"))
		free := createDriver(t, "Depot 1")
		dispatcher := services.NewDriverDispatcher()

		_, err := dispatcher.Dispatch(assignedOrder, []*dispatch.Driver{free})

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, dispatch.DriverAvailable, free.Status())
	})

	t.Run("should refuse an order not created via constructor", func(t *testing.T) {
		var notConstructed order.Order
		dispatcher := services.NewDriverDispatcher()

		_, err := dispatcher.Dispatch(&notConstructed, nil)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
