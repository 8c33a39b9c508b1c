// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the logistics system. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DriverDispatcher: A domain service for selecting a driver for a pending order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
