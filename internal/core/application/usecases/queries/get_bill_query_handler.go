package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBillQueryHandler reads an order's bill from the database.
type GetBillQueryHandler struct {
	db *gorm.DB
}

// NewGetBillQueryHandler creates a handler for bill lookups.
// Requires a GORM database connection for query execution.
func NewGetBillQueryHandler(db *gorm.DB) GetBillQueryHandler {
	return GetBillQueryHandler{db: db}
}

// Handle executes the lookup and returns the bill's snapshot.
// Returns an ObjectNotFoundError when the order has no bill, which is the
// case for any order that has not been delivered.
func (h GetBillQueryHandler) Handle(ctx context.Context, query GetBillQuery) (BillResponse, error) {
	if err := query.Validate(); err != nil {
		return BillResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			base_amount,
			vip_charges,
			total_amount,
			status,
			amount_paid,
			generated_at,
			paid_at
		FROM bills
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		resp        BillResponse
		id, orderID uuid.UUID
		status      int
		paidAt      sql.NullTime
	)

	err := row.Scan(
		&id,
		&orderID,
		&resp.BaseAmount,
		&resp.VipCharges,
		&resp.TotalAmount,
		&status,
		&resp.AmountPaid,
		&resp.GeneratedAt,
		&paidAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return BillResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return BillResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return BillResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return BillResponse{}, err
	}

	resp.Status = billing.BillStatus(status).String()
	resp.Outstanding = resp.TotalAmount - resp.AmountPaid
	if paidAt.Valid {
		t := paidAt.Time
		resp.PaidAt = &t
	}

	return resp, nil
}
