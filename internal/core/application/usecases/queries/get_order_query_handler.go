package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order's snapshot from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup and returns the order's snapshot.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrderRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var (
		resp            OrderResponse
		id, clientID    uuid.UUID
		driverID        uuid.NullUUID
		status          int
		paymentStatus   int
		actualDelivery  sql.NullTime
		totalAmount     sql.NullFloat64
		rejectionReason sql.NullString
	)

	err := row.Scan(
		&id,
		&clientID,
		&resp.Pickup,
		&resp.Delivery,
		&resp.ItemType,
		&resp.Quantity,
		&resp.Vip,
		&status,
		&resp.CreatedAt,
		&resp.EstimatedDelivery,
		&actualDelivery,
		&driverID,
		&paymentStatus,
		&resp.BillGenerated,
		&totalAmount,
		&rejectionReason,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return OrderResponse{}, err
	}
	if driverID.Valid {
		drv, drvErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if drvErr != nil {
			return OrderResponse{}, drvErr
		}
		resp.DriverID = &drv
	}

	resp.Status = order.Status(status).String()
	resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()

	if actualDelivery.Valid {
		t := actualDelivery.Time
		resp.ActualDelivery = &t
	}
	if totalAmount.Valid {
		v := totalAmount.Float64
		resp.TotalAmount = &v
	}
	if rejectionReason.Valid {
		resp.RejectionReason = rejectionReason.String
	}

	return resp, nil
}
