// Package billrepo provides data transfer objects and mapping functions for bill persistence.
// The bills table carries a unique index on the order reference; the database
// is the final arbiter of the one-bill-per-order rule under concurrency.
package billrepo

import (
	"time"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BillDTO represents the database structure for persisting bill aggregates.
type BillDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	BaseAmount  float64
	VipCharges  float64
	TotalAmount float64
	Status      int
	AmountPaid  float64
	GeneratedAt time.Time
	PaidAt      *time.Time
}

// TableName specifies the database table name for bill entities.
func (BillDTO) TableName() string {
	return "bills"
}

func fromDomain(aggregate *billing.Bill) BillDTO {
	return BillDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		BaseAmount:  aggregate.BaseAmount(),
		VipCharges:  aggregate.VipCharges(),
		TotalAmount: aggregate.TotalAmount(),
		Status:      int(aggregate.Status()),
		AmountPaid:  aggregate.AmountPaid(),
		GeneratedAt: aggregate.GeneratedAt(),
		PaidAt:      aggregate.PaidAt(),
	}
}

func toDomain(dto BillDTO) (*billing.Bill, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return billing.RestoreBill(billing.RestoreBillParams{
		ID:          id,
		OrderID:     orderID,
		BaseAmount:  dto.BaseAmount,
		VipCharges:  dto.VipCharges,
		TotalAmount: dto.TotalAmount,
		GeneratedAt: dto.GeneratedAt,
		Status:      billing.BillStatus(dto.Status),
		AmountPaid:  dto.AmountPaid,
		PaidAt:      dto.PaidAt,
	})
}
