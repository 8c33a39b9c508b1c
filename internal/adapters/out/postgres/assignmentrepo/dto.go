// Package assignmentrepo provides data transfer objects and mapping functions
// for delivery assignment persistence. Assignments are keyed by order; an
// order has at most one assignment at a time.
package assignmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting delivery
// assignments.
type AssignmentDTO struct {
	OrderID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID          uuid.UUID `gorm:"type:uuid;index"`
	CurrentLocation   string
	LocationUpdatedAt time.Time
	Status            int
	CompletedAt       *time.Time
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(aggregate *dispatch.Assignment) AssignmentDTO {
	return AssignmentDTO{
		OrderID:           aggregate.OrderID().Bytes(),
		DriverID:          aggregate.DriverID().Bytes(),
		CurrentLocation:   aggregate.CurrentLocation(),
		LocationUpdatedAt: aggregate.LocationUpdatedAt(),
		Status:            int(aggregate.Status()),
		CompletedAt:       aggregate.CompletedAt(),
	}
}

func toDomain(dto AssignmentDTO) (*dispatch.Assignment, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return dispatch.RestoreAssignment(dispatch.RestoreAssignmentParams{
		OrderID:           orderID,
		DriverID:          driverID,
		CurrentLocation:   dto.CurrentLocation,
		LocationUpdatedAt: dto.LocationUpdatedAt,
		Status:            dispatch.AssignmentStatus(dto.Status),
		CompletedAt:       dto.CompletedAt,
	})
}
