// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes for
// the status scans the dispatch workflow relies on.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID          uuid.UUID  `gorm:"type:uuid;index"`
	DriverID          *uuid.UUID `gorm:"type:uuid;index"`
	PickupLocation    string
	DeliveryLocation  string
	ItemType          string
	Quantity          float64
	Vip               bool
	Status            int `gorm:"index"`
	CreatedAt         time.Time
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	DeliveryCode      string
	CodeAttempts      int
	PaymentStatus     int
	BillGenerated     bool
	TotalAmount       *float64
	RejectionReason   string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		ClientID:          aggregate.ClientID().Bytes(),
		DriverID:          driverID,
		PickupLocation:    aggregate.Pickup(),
		DeliveryLocation:  aggregate.Delivery(),
		ItemType:          aggregate.ItemType(),
		Quantity:          aggregate.Quantity(),
		Vip:               aggregate.IsVip(),
		Status:            int(aggregate.Status()),
		CreatedAt:         aggregate.CreatedAt(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		DeliveryCode:      aggregate.DeliveryCode(),
		CodeAttempts:      aggregate.DeliveryCodeAttempts(),
		PaymentStatus:     int(aggregate.PaymentStatus()),
		BillGenerated:     aggregate.BillGenerated(),
		TotalAmount:       aggregate.TotalAmount(),
		RejectionReason:   aggregate.RejectionReason(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate through RestoreOrder so the stored
// state is re-validated against the aggregate invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                id,
		ClientID:          clientID,
		Pickup:            dto.PickupLocation,
		Delivery:          dto.DeliveryLocation,
		ItemType:          dto.ItemType,
		Quantity:          dto.Quantity,
		Vip:               dto.Vip,
		Status:            order.Status(dto.Status),
		CreatedAt:         dto.CreatedAt,
		EstimatedDelivery: dto.EstimatedDelivery,
		ActualDelivery:    dto.ActualDelivery,
		DriverID:          driverID,
		DeliveryCode:      dto.DeliveryCode,
		CodeAttempts:      dto.CodeAttempts,
		PaymentStatus:     order.PaymentStatus(dto.PaymentStatus),
		BillGenerated:     dto.BillGenerated,
		TotalAmount:       dto.TotalAmount,
		RejectionReason:   dto.RejectionReason,
	})
}
