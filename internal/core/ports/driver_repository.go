package ports

import (
	"context"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *dispatch.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *dispatch.Driver) error

	// Get retrieves a driver by its unique identifier.
	// Returns an ObjectNotFoundError if the driver does not exist.
	Get(ctx context.Context, id kernel.UUID) (*dispatch.Driver, error)

	// GetAllAvailable retrieves all drivers currently free to take an order.
	GetAllAvailable(ctx context.Context) ([]*dispatch.Driver, error)
}
