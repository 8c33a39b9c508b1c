package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmDeliveryCommand_EmptyCode(t *testing.T) {
	o := newPendingOrder(t)
	_, err := commands.NewConfirmDeliveryCommand(o.ID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryCodeIsRequired)
}

func TestConfirmDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driver := newAvailableDriver(t)
	require.NoError(t, driver.MarkBusy())
	transitOrder := newInTransitOrder(t, driver.ID())
	assignment := newActiveAssignment(t, transitOrder.ID(), driver.ID())
	cmd, _ := commands.NewConfirmDeliveryCommand(transitOrder.ID(), testDeliveryCode)

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	driverRepo := new(MockDriverRepository)
	billRepo := new(MockBillRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("BillRepository").Return(billRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", mock.Anything, transitOrder.ID()).Return(transitOrder, nil).Once()
	orderRepo.On("Update", mock.Anything, transitOrder).Return(nil).Once()
	assignmentRepo.On("GetByOrderID", mock.Anything, transitOrder.ID()).Return(assignment, nil).Once()
	assignmentRepo.On("Update", mock.Anything, assignment).Return(nil).Once()
	driverRepo.On("Get", mock.Anything, driver.ID()).Return(driver, nil).Once()
	driverRepo.On("Update", mock.Anything, driver).Return(nil).Once()

	var generatedBill *billing.Bill
	billRepo.On("Add", mock.Anything, mock.AnythingOfType("*billing.Bill")).
		Run(func(args mock.Arguments) {
			generatedBill = args.Get(1).(*billing.Bill)
		}).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, mock.MatchedBy(func(e ports.OrderChangedEvent) bool {
		return e.Status == order.Delivered.String()
	})).Return(nil).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Delivered, transitOrder.Status())
	assert.NotNil(t, transitOrder.ActualDelivery())
	assert.True(t, transitOrder.BillGenerated())
	assert.Equal(t, dispatch.AssignmentCompleted, assignment.Status())
	assert.Equal(t, dispatch.DriverAvailable, driver.Status())

	require.NotNil(t, generatedBill)
	assert.True(t, generatedBill.OrderID().IsEqual(transitOrder.ID()))
	assert.InDelta(t, 300.0, generatedBill.TotalAmount(), 1e-9)
	require.NotNil(t, transitOrder.TotalAmount())
	assert.InDelta(t, 300.0, *transitOrder.TotalAmount(), 1e-9)

	orderRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	billRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_WrongCodeCommitsAttempt(t *testing.T) {
	ctx := t.Context()
	driver := newAvailableDriver(t)
	transitOrder := newInTransitOrder(t, driver.ID())
	cmd, _ := commands.NewConfirmDeliveryCommand(transitOrder.ID(), "000000")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", mock.Anything, transitOrder.ID()).Return(transitOrder, nil).Once()
	orderRepo.On("Update", mock.Anything, transitOrder).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDeliveryCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidDeliveryCode)

	// The attempt counter change is committed even though the call failed.
	assert.Equal(t, order.InTransit, transitOrder.Status())
	assert.Equal(t, 1, transitOrder.DeliveryCodeAttempts())
	assert.False(t, transitOrder.BillGenerated())
	uow.AssertExpectations(t)
}

func TestConfirmDeliveryCommandHandler_Handle_LockedAfterMaxAttempts(t *testing.T) {
	ctx := t.Context()
	driver := newAvailableDriver(t)
	transitOrder := newInTransitOrder(t, driver.ID())

	factory := new(MockUoWFactory)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	orderRepo.On("Get", mock.Anything, transitOrder.ID()).Return(transitOrder, nil)
	orderRepo.On("Update", mock.Anything, transitOrder).Return(nil)
	factory.On("Create").Return(uow)

	h := commands.NewConfirmDeliveryCommandHandler(factory, nil)

	cmd, _ := commands.NewConfirmDeliveryCommand(transitOrder.ID(), "000000")
	for range order.MaxDeliveryCodeAttempts - 1 {
		err := h.Handle(ctx, cmd)
		require.ErrorIs(t, err, order.ErrInvalidDeliveryCode)
	}

	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrDeliveryCodeLocked)

	// The correct code no longer delivers once the order is locked.
	correct, _ := commands.NewConfirmDeliveryCommand(transitOrder.ID(), testDeliveryCode)
	err = h.Handle(ctx, correct)
	require.ErrorIs(t, err, order.ErrDeliveryCodeLocked)
	assert.Equal(t, order.InTransit, transitOrder.Status())
}
