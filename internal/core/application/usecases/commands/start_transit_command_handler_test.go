package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewStartTransitCommand_BlankLocation(t *testing.T) {
	_, err := commands.NewStartTransitCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDepartureLocationIsRequired)
}

func TestStartTransitCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	assignedOrder := newAssignedOrder(t, driverID)
	assignment := newActiveAssignment(t, assignedOrder.ID(), driverID)
	cmd, _ := commands.NewStartTransitCommand(assignedOrder.ID(), "Highway 9")

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", mock.Anything, assignedOrder.ID()).Return(assignedOrder, nil).Once()
	orderRepo.On("Update", mock.Anything, assignedOrder).Return(nil).Once()
	assignmentRepo.On("GetByOrderID", mock.Anything, assignedOrder.ID()).Return(assignment, nil).Once()
	assignmentRepo.On("Update", mock.Anything, assignment).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartTransitCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.InTransit, assignedOrder.Status())
	assert.Equal(t, dispatch.AssignmentInTransit, assignment.Status())
	assert.Equal(t, "Highway 9", assignment.CurrentLocation())

	orderRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
}

func TestStartTransitCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()
	pendingOrder := newPendingOrder(t)
	cmd, _ := commands.NewStartTransitCommand(pendingOrder.ID(), "Highway 9")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", mock.Anything, pendingOrder.ID()).Return(pendingOrder, nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartTransitCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.Pending, pendingOrder.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
