package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
)

// Request bodies. Field validation runs through go-playground/validator
// before any command is constructed, so malformed input never reaches the
// domain layer.
type (
	// CreateOrderRequest is the payload for registering a new order.
	CreateOrderRequest struct {
		ClientID string  `json:"client_id" validate:"required,uuid"`
		Pickup   string  `json:"pickup" validate:"required"`
		Delivery string  `json:"delivery" validate:"required"`
		ItemType string  `json:"item_type" validate:"required"`
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
		Vip      bool    `json:"vip"`
	}

	// AssignDriverRequest names the driver to assign to an order.
	AssignDriverRequest struct {
		DriverID string `json:"driver_id" validate:"required,uuid"`
	}

	// RejectOrderRequest carries the rejection reason.
	RejectOrderRequest struct {
		Reason string `json:"reason" validate:"required"`
	}

	// StartTransitRequest carries the driver's departure location.
	StartTransitRequest struct {
		Location string `json:"location" validate:"required"`
	}

	// ConfirmDeliveryRequest carries the recipient's confirmation code.
	ConfirmDeliveryRequest struct {
		Code string `json:"code" validate:"required"`
	}

	// RecordPaymentRequest carries a payment against an order's bill.
	RecordPaymentRequest struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}

	// CreateDriverRequest is the payload for registering a new driver.
	CreateDriverRequest struct {
		UserID   string `json:"user_id" validate:"required,uuid"`
		Location string `json:"location" validate:"required"`
	}
)

// Error is the uniform error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Order is the response body for order snapshots.
type Order struct {
	ID                string     `json:"id"`
	ClientID          string     `json:"client_id"`
	Pickup            string     `json:"pickup"`
	Delivery          string     `json:"delivery"`
	ItemType          string     `json:"item_type"`
	Quantity          float64    `json:"quantity"`
	Vip               bool       `json:"vip"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	EstimatedDelivery time.Time  `json:"estimated_delivery"`
	ActualDelivery    *time.Time `json:"actual_delivery,omitempty"`
	DriverID          *string    `json:"driver_id,omitempty"`
	PaymentStatus     string     `json:"payment_status"`
	BillGenerated     bool       `json:"bill_generated"`
	TotalAmount       *float64   `json:"total_amount,omitempty"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
}

// Bill is the response body for bill lookups.
type Bill struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	BaseAmount  float64    `json:"base_amount"`
	VipCharges  float64    `json:"vip_charges"`
	TotalAmount float64    `json:"total_amount"`
	Status      string     `json:"status"`
	AmountPaid  float64    `json:"amount_paid"`
	Outstanding float64    `json:"outstanding"`
	GeneratedAt time.Time  `json:"generated_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

// Driver is the response body for roster listings.
type Driver struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Status          string `json:"status"`
	CurrentLocation string `json:"current_location"`
}

// BillRef is returned by bill generation.
type BillRef struct {
	BillID string `json:"bill_id"`
}

// Payment is returned after recording a payment.
type Payment struct {
	BillID      string  `json:"bill_id"`
	AmountPaid  float64 `json:"amount_paid"`
	Outstanding float64 `json:"outstanding"`
	Settled     bool    `json:"settled"`
}

func orderFromResponse(resp queries.OrderResponse) Order {
	o := Order{
		ID:                resp.ID.String(),
		ClientID:          resp.ClientID.String(),
		Pickup:            resp.Pickup,
		Delivery:          resp.Delivery,
		ItemType:          resp.ItemType,
		Quantity:          resp.Quantity,
		Vip:               resp.Vip,
		Status:            resp.Status,
		CreatedAt:         resp.CreatedAt,
		EstimatedDelivery: resp.EstimatedDelivery,
		ActualDelivery:    resp.ActualDelivery,
		PaymentStatus:     resp.PaymentStatus,
		BillGenerated:     resp.BillGenerated,
		TotalAmount:       resp.TotalAmount,
		RejectionReason:   resp.RejectionReason,
	}

	if resp.DriverID != nil {
		id := resp.DriverID.String()
		o.DriverID = &id
	}

	return o
}

func driverFromResponse(resp queries.DriverResponse) Driver {
	return Driver{
		ID:              resp.ID.String(),
		UserID:          resp.UserID.String(),
		Status:          resp.Status,
		CurrentLocation: resp.CurrentLocation,
	}
}

func billFromResponse(resp queries.BillResponse) Bill {
	return Bill{
		ID:          resp.ID.String(),
		OrderID:     resp.OrderID.String(),
		BaseAmount:  resp.BaseAmount,
		VipCharges:  resp.VipCharges,
		TotalAmount: resp.TotalAmount,
		Status:      resp.Status,
		AmountPaid:  resp.AmountPaid,
		Outstanding: resp.Outstanding,
		GeneratedAt: resp.GeneratedAt,
		PaidAt:      resp.PaidAt,
	}
}
