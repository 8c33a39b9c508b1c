package dispatch_test

import (
	"testing"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createAvailableDriver(t *testing.T) *dispatch.Driver {
	t.Helper()
	d, err := dispatch.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "Depot 1")
	require.NoError(t, err)
	require.NotNil(t, d)
	return d
}

func TestNewDriver(t *testing.T) {
	validID := kernel.NewUUID()
	validUserID := kernel.NewUUID()

	t.Run("should create available driver with valid parameters", func(t *testing.T) {
		d, err := dispatch.NewDriver(validID, validUserID, "Depot 1")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(validID))
		assert.True(t, d.UserID().IsEqual(validUserID))
		assert.Equal(t, dispatch.DriverAvailable, d.Status())
		assert.Equal(t, "Depot 1", d.CurrentLocation())
	})

	t.Run("should return error for invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := dispatch.NewDriver(invalidID, validUserID, "Depot 1")
		require.Error(t, err)

		_, err = dispatch.NewDriver(validID, invalidID, "Depot 1")
		require.Error(t, err)
	})

	t.Run("should return error for blank location", func(t *testing.T) {
		_, err := dispatch.NewDriver(validID, validUserID, "  ")

		require.Error(t, err)
	})
}

func TestDriver_MarkBusy(t *testing.T) {
	t.Run("should mark available driver busy", func(t *testing.T) {
		d := createAvailableDriver(t)

		require.NoError(t, d.MarkBusy())
		assert.Equal(t, dispatch.DriverBusy, d.Status())
	})

	t.Run("should refuse when already busy", func(t *testing.T) {
		d := createAvailableDriver(t)
		require.NoError(t, d.MarkBusy())

		err := d.MarkBusy()

		require.ErrorIs(t, err, dispatch.ErrDriverNotAvailable)
	})
}

func TestDriver_MarkAvailable(t *testing.T) {
	d := createAvailableDriver(t)
	require.NoError(t, d.MarkBusy())

	d.MarkAvailable()

	assert.Equal(t, dispatch.DriverAvailable, d.Status())
}

func TestDriver_UpdateLocation(t *testing.T) {
	t.Run("should record new location", func(t *testing.T) {
		d := createAvailableDriver(t)

		require.NoError(t, d.UpdateLocation("Crossing 5"))
		assert.Equal(t, "Crossing 5", d.CurrentLocation())
	})

	t.Run("should reject blank location", func(t *testing.T) {
		d := createAvailableDriver(t)

		require.Error(t, d.UpdateLocation(""))
		assert.Equal(t, "Depot 1", d.CurrentLocation())
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("should restore busy driver", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()

		d, err := dispatch.RestoreDriver(id, userID, dispatch.DriverBusy, "Crossing 5")

		require.NoError(t, err)
		assert.Equal(t, dispatch.DriverBusy, d.Status())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := dispatch.RestoreDriver(kernel.NewUUID(), kernel.NewUUID(), dispatch.DriverUnknown, "Depot 1")

		require.Error(t, err)
	})
}

func TestDriver_Validate(t *testing.T) {
	t.Run("should reject driver not created via constructor", func(t *testing.T) {
		var d dispatch.Driver

		require.ErrorIs(t, d.Validate(), dispatch.ErrDriverIsNotConstructed)
	})

	t.Run("should reject nil driver", func(t *testing.T) {
		var d *dispatch.Driver

		require.ErrorIs(t, d.Validate(), dispatch.ErrDriverIsNotConstructed)
	})
}
