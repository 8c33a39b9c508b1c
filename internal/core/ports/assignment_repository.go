package ports

import (
	"context"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery
// assignments. An assignment is addressed by its order, never independently.
type AssignmentRepository interface {
	// Add persists a new delivery assignment.
	Add(ctx context.Context, aggregate *dispatch.Assignment) error

	// Update persists changes to an existing delivery assignment.
	Update(ctx context.Context, aggregate *dispatch.Assignment) error

	// GetByOrderID retrieves the assignment for an order.
	// Returns an ObjectNotFoundError if the order has no assignment.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*dispatch.Assignment, error)

	// Remove deletes the assignment for an order. An order keeps an
	// assignment only while it is assigned, in transit or delivered, so
	// rejection removes it. Removing a missing assignment is not an error.
	Remove(ctx context.Context, orderID kernel.UUID) error
}
