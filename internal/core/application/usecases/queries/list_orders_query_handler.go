package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists order snapshots from the database.
// Supports optional status and client filters for dashboard views.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing and returns matching order snapshots.
// Results are sorted oldest first so dispatchers see the longest waiting
// orders at the top.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			client_id,
			pickup_location,
			delivery_location,
			item_type,
			quantity,
			vip,
			status,
			created_at,
			estimated_delivery,
			actual_delivery,
			driver_id,
			payment_status,
			bill_generated,
			total_amount,
			rejection_reason
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.Status() != nil {
		sqlQuery += " AND status = ?"
		args = append(args, *query.Status())
	}
	if query.ClientID() != nil {
		sqlQuery += " AND client_id = ?"
		args = append(args, query.ClientID().Bytes())
	}
	sqlQuery += " ORDER BY created_at, id"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
