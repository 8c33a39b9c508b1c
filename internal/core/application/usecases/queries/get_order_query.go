// Package queries contains read-only operations against the order store.
// Query handlers bypass the aggregates and repositories, reading projections
// straight from the database in the CQRS architecture.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full lifecycle snapshot of a single order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", snapshot.ID, snapshot.Status)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's snapshot.
// Validates the order identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderResponse is the read model for a single order. The delivery
// confirmation code is deliberately absent; it is shared with the recipient
// through another channel.
type OrderResponse struct {
	ID                kernel.UUID
	ClientID          kernel.UUID
	Pickup            string
	Delivery          string
	ItemType          string
	Quantity          float64
	Vip               bool
	Status            string
	CreatedAt         time.Time
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	DriverID          *kernel.UUID
	PaymentStatus     string
	BillGenerated     bool
	TotalAmount       *float64
	RejectionReason   string
}
