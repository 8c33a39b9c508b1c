package commands

import (
	"context"
	"time"

	"logistics/internal/core/ports"
)

// StartTransitCommandHandler moves an assigned order into transit.
// Updates the delivery assignment's tracking position to the driver's
// departure location within the same transaction.
type StartTransitCommandHandler struct {
	uowFactory DispatchUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewStartTransitCommandHandler creates a handler for transit departure.
// The publisher may be nil when event publishing is disabled.
func NewStartTransitCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.OrderEventPublisher,
) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the transit departure command.
// Transitions the order to in transit and records the departure on the
// assignment. Fails with an invalid transition error unless the order is
// assigned.
func (h StartTransitCommandHandler) Handle(ctx context.Context, command StartTransitCommand) error {
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

	transitOrder, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = transitOrder.StartTransit(); err != nil {
		return err
	}

	assignment, err := uow.AssignmentRepository().GetByOrderID(ctx, transitOrder.ID())
	if err != nil {
		return err
	}

	if err = assignment.Depart(command.Location(), time.Now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, transitOrder); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, assignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, transitOrder)
	return nil
}
