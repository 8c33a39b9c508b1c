package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var (
	ErrNoAvailableDrivers = errors.New("no available drivers found")
	ErrNoPendingOrders    = errors.New("no pending orders found")
)

// DispatchPendingCommandHandler orchestrates the automatic assignment process.
// Finds the oldest pending order and matches it with an available driver using
// business rules. Ensures transactional consistency when updating order,
// assignment and driver states.
//
// Example:
//
//	handler := NewDispatchPendingCommandHandler(uowFactory, publisher)
//	cmd := NewDispatchPendingCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoAvailableDrivers):
//	    log.Println("All drivers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Driver assigned successfully")
//	}
type DispatchPendingCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewDispatchPendingCommandHandler creates a handler for automatic driver
// assignment operations. Requires a DispatchUoWFactory for coordinating
// transactional updates across repositories.
func NewDispatchPendingCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.OrderEventPublisher,
) DispatchPendingCommandHandler {
	return DispatchPendingCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the automatic assignment command.
// Retrieves the oldest pending order, finds available drivers, and uses
// DriverDispatcher to select the match. Updates all entities within a single
// transaction. Returns specific errors for no orders (ErrNoPendingOrders) or
// no drivers (ErrNoAvailableDrivers).
func (h DispatchPendingCommandHandler) Handle(ctx context.Context, command DispatchPendingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pendingOrder, err := uow.OrderRepository().GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	drivers, err := uow.DriverRepository().GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(drivers) == 0 {
		return ErrNoAvailableDrivers
	}

	assignedDriver, err := services.NewDriverDispatcher().Dispatch(pendingOrder, drivers)
	if errors.Is(err, services.ErrDriverNotFound) {
		return ErrNoAvailableDrivers
	}
	if err != nil {
		return err
	}

	if err = assignDriverToOrder(ctx, uow, pendingOrder, assignedDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, pendingOrder)
	return nil
}
