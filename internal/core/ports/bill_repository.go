package ports

import (
	"context"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
)

// BillRepository defines the persistence contract for bill aggregates.
// At most one bill exists per order; the store enforces this with a unique
// constraint on the order reference, so a concurrent duplicate Add fails.
type BillRepository interface {
	// Add persists a new bill. Fails if a bill already exists for the
	// bill's order.
	Add(ctx context.Context, aggregate *billing.Bill) error

	// Update persists changes to an existing bill.
	Update(ctx context.Context, aggregate *billing.Bill) error

	// GetByOrderID retrieves the bill generated for an order.
	// Returns an ObjectNotFoundError if no bill exists yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*billing.Bill, error)
}
