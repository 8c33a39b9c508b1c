package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, "Dock 2", "Main St", "furniture", 2.5, true)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, clientID, cmd.ClientID())
	assert.Equal(t, "Dock 2", cmd.Pickup())
	assert.Equal(t, "Main St", cmd.Delivery())
	assert.Equal(t, "furniture", cmd.ItemType())
	assert.InDelta(t, 2.5, cmd.Quantity(), 1e-9)
	assert.True(t, cmd.IsVip())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), "Dock 2", "Main St", "furniture", 1, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_BlankPickup(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "   ", "Main St", "furniture", 1, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPickupIsRequired)
}

func TestNewCreateOrderCommand_EmptyDelivery(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Dock 2", "", "furniture", 1, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryIsRequired)
}

func TestNewCreateOrderCommand_EmptyItemType(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Dock 2", "Main St", "", 1, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemTypeIsRequired)
}

func TestNewCreateOrderCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Dock 2", "Main St", "furniture", 0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Dock 2", "Main St", "furniture", -3, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}
