package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves order snapshots, optionally filtered by status
// and client. Both filters are optional and combine with AND.
//
// Example:
//
//	query, err := NewListOrdersQuery("pending", nil)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d pending orders\n", len(orders))
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status   *order.Status
	clientID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query listing orders. An empty status string
// disables the status filter; a nil clientID disables the client filter.
// Returns a validation error for unrecognized status names.
func NewListOrdersQuery(status string, clientID *kernel.UUID) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setStatus(status),
		query.setClientID(clientID),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// ClientID returns the client filter, or nil when unfiltered.
func (q ListOrdersQuery) ClientID() *kernel.UUID {
	return q.clientID
}

func (q *ListOrdersQuery) setStatus(status string) error {
	if status == "" {
		return nil
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	q.status = &parsed
	return nil
}

func (q *ListOrdersQuery) setClientID(clientID *kernel.UUID) error {
	if clientID == nil {
		return nil
	}

	if err := clientID.Validate(); err != nil {
		return err
	}

	q.clientID = clientID
	return nil
}
