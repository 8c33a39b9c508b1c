// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence.
package driverrepo

import (
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. The status column is indexed for the availability scans the
// dispatch workflow performs.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	Status          int       `gorm:"index"`
	CurrentLocation string
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *dispatch.Driver) DriverDTO {
	return DriverDTO{
		ID:              aggregate.ID().Bytes(),
		UserID:          aggregate.UserID().Bytes(),
		Status:          int(aggregate.Status()),
		CurrentLocation: aggregate.CurrentLocation(),
	}
}

func toDomain(dto DriverDTO) (*dispatch.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return dispatch.RestoreDriver(id, userID, dispatch.DriverStatus(dto.Status), dto.CurrentLocation)
}
