package queries

import (
	"logistics/internal/core/domain/model/kernel"
)

// ListDriversQuery retrieves every registered driver with its availability.
// Parameterless; the fleet is small enough to list whole.
type ListDriversQuery struct{}

// NewListDriversQuery creates a query for the driver roster.
func NewListDriversQuery() ListDriversQuery {
	return ListDriversQuery{}
}

// Validate always succeeds; the query carries no parameters.
func (q ListDriversQuery) Validate() error {
	return nil
}

// DriverResponse is the read model for a registered driver.
type DriverResponse struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	Status          string
	CurrentLocation string
}
