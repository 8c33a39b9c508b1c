package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server exposes the order lifecycle and billing operations over REST.
// It coordinates between HTTP handlers and application use cases: each route
// binds and validates the request body, builds a command or query, and maps
// domain errors onto status codes.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	assignDriverHandler    commands.AssignDriverCommandHandler
	dispatchPendingHandler commands.DispatchPendingCommandHandler
	rejectOrderHandler     commands.RejectOrderCommandHandler
	startTransitHandler    commands.StartTransitCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	generateBillHandler    commands.GenerateBillCommandHandler
	recordPaymentHandler   commands.RecordPaymentCommandHandler
	createDriverHandler    commands.CreateDriverCommandHandler

	// Query handlers
	getOrderHandler    queries.GetOrderQueryHandler
	listOrdersHandler  queries.ListOrdersQueryHandler
	getBillHandler     queries.GetBillQueryHandler
	listDriversHandler queries.ListDriversQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	dispatchPendingHandler commands.DispatchPendingCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	startTransitHandler commands.StartTransitCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	generateBillHandler commands.GenerateBillCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getBillHandler queries.GetBillQueryHandler,
	listDriversHandler queries.ListDriversQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		assignDriverHandler:    assignDriverHandler,
		dispatchPendingHandler: dispatchPendingHandler,
		rejectOrderHandler:     rejectOrderHandler,
		startTransitHandler:    startTransitHandler,
		confirmDeliveryHandler: confirmDeliveryHandler,
		generateBillHandler:    generateBillHandler,
		recordPaymentHandler:   recordPaymentHandler,
		createDriverHandler:    createDriverHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
		getBillHandler:         getBillHandler,
		listDriversHandler:     listDriversHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/assign", s.AssignDriver)
	api.POST("/orders/:orderID/reject", s.RejectOrder)
	api.POST("/orders/:orderID/transit", s.StartTransit)
	api.POST("/orders/:orderID/confirm", s.ConfirmDelivery)
	api.POST("/orders/:orderID/bill", s.GenerateBill)
	api.GET("/orders/:orderID/bill", s.GetBill)
	api.POST("/orders/:orderID/payments", s.RecordPayment)
	api.POST("/dispatch", s.DispatchPending)
	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.ListDrivers)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, clientID, req.Pickup, req.Delivery, req.ItemType, req.Quantity, req.Vip)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"order_id": orderID.String()})
}

// ListOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by status and client_id query parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var clientID *kernel.UUID
	if raw := ctx.QueryParam("client_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid client id")
		}
		clientID = &id
	}

	query, err := queries.NewListOrdersQuery(ctx.QueryParam("status"), clientID)
	if err != nil {
		return badRequest(ctx, "Invalid filter: "+err.Error())
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(resp))
}

// AssignDriver handles POST /api/v1/orders/:orderID/assign - assigns a
// specific driver to a pending order.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchPending handles POST /api/v1/dispatch - assigns the oldest pending
// order to an available driver.
func (s *Server) DispatchPending(ctx echo.Context) error {
	cmd := commands.NewDispatchPendingCommand()

	if err := s.dispatchPendingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:orderID/reject - rejects an order
// before it leaves for delivery.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req RejectOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid rejection data: "+err.Error())
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartTransit handles POST /api/v1/orders/:orderID/transit - marks an
// assigned order as picked up and moving.
func (s *Server) StartTransit(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req StartTransitRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid transit data: "+err.Error())
	}

	cmd, err := commands.NewStartTransitCommand(orderID, req.Location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.startTransitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/:orderID/confirm - verifies
// the recipient's code and completes the delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ConfirmDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, req.Code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GenerateBill handles POST /api/v1/orders/:orderID/bill - generates the
// bill for a delivered order. Returns the existing bill when one was already
// generated.
func (s *Server) GenerateBill(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewGenerateBillCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	billID, err := s.generateBillHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BillRef{BillID: billID.String()})
}

// GetBill handles GET /api/v1/orders/:orderID/bill - retrieves the bill for
// an order.
func (s *Server) GetBill(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetBillQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getBillHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, billFromResponse(resp))
}

// RecordPayment handles POST /api/v1/orders/:orderID/payments - records a
// full or partial payment against an order's bill.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req RecordPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, req.Amount)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Payment{
		BillID:      result.BillID.String(),
		AmountPaid:  result.AmountPaid,
		Outstanding: result.Outstanding,
		Settled:     result.Settled,
	})
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, userID, req.Location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"driver_id": driverID.String()})
}

// ListDrivers handles GET /api/v1/drivers - retrieves the driver roster.
func (s *Server) ListDrivers(ctx echo.Context) error {
	query := queries.NewListDriversQuery()

	drivers, err := s.listDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = driverFromResponse(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderID"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func errorResponse(ctx echo.Context, err error) error {
	status := statusForError(err)
	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
