package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

const testDeliveryCode = "428137"

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Warehouse 4",
		"12 Elm Street",
		"electronics",
		3,
		false,
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func newAssignedOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()

	o := newPendingOrder(t)
	require.NoError(t, o.Assign(driverID, testDeliveryCode))
	return o
}

func newInTransitOrder(t *testing.T, driverID kernel.UUID) *order.Order {
	t.Helper()

	o := newAssignedOrder(t, driverID)
	require.NoError(t, o.StartTransit())
	return o
}

func newAvailableDriver(t *testing.T) *dispatch.Driver {
	t.Helper()

	d, err := dispatch.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "Depot 1")
	require.NoError(t, err)
	return d
}

func newActiveAssignment(t *testing.T, orderID, driverID kernel.UUID) *dispatch.Assignment {
	t.Helper()

	a, err := dispatch.NewAssignment(orderID, driverID, "Depot 1", time.Now())
	require.NoError(t, err)
	return a
}
