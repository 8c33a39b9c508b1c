package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetBillQueryIsNotConstructed = errors.New(
	"GetBillQuery must be created via NewGetBillQuery constructor",
)

// GetBillQuery retrieves the bill generated for an order, including the
// charge breakdown and the collected balance.
type GetBillQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBillQuery creates a query for an order's bill.
// Validates the order identifier.
func NewGetBillQuery(orderID kernel.UUID) (GetBillQuery, error) {
	query := GetBillQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetBillQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBillQueryIsNotConstructed if validation fails.
func (q GetBillQuery) Validate() error {
	return q.guard.Validate(ErrGetBillQueryIsNotConstructed)
}

// OrderID returns the identifier of the billed order.
func (q GetBillQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetBillQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// BillResponse is the read model for an order's bill.
type BillResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	BaseAmount  float64
	VipCharges  float64
	TotalAmount float64
	Status      string
	AmountPaid  float64
	Outstanding float64
	GeneratedAt time.Time
	PaidAt      *time.Time
}
