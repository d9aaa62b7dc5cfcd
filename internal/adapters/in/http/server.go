// Package http exposes the ordering use cases over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the ordering API.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	payOrderHandler    commands.PayOrderCommandHandler
	approveHandler     commands.ApproveOrderCommandHandler
	initCancelHandler  commands.InitCancelOrderCommandHandler

	// Query handlers
	trackOrderHandler      queries.TrackOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	approveHandler commands.ApproveOrderCommandHandler,
	initCancelHandler commands.InitCancelOrderCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		payOrderHandler:        payOrderHandler,
		approveHandler:         approveHandler,
		initCancelHandler:      initCancelHandler,
		trackOrderHandler:      trackOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderID/pay", s.PayOrder)
	api.POST("/orders/:orderID/approve", s.ApproveOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.GET("/orders/track/:trackingID", s.TrackOrder)
	api.GET("/orders/active", s.GetActiveOrders)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest carries the delivery destination of a new order.
type AddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// OrderItemRequest carries one requested line of a new order.
type OrderItemRequest struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	ProductPrice string `json:"productPrice"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price"`
	SubTotal     string `json:"subTotal"`
}

// CreateOrderRequest is the request body for order placement.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customerId"`
	RestaurantID string             `json:"restaurantId"`
	Address      AddressRequest     `json:"address"`
	Price        string             `json:"price"`
	Items        []OrderItemRequest `json:"items"`
}

// CreateOrderResponse reports the identity assigned to a new order.
type CreateOrderResponse struct {
	OrderID    string `json:"orderId"`
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
}

// CancelOrderRequest is the optional request body for order cancellation.
type CancelOrderRequest struct {
	FailureMessages []string `json:"failureMessages"`
}

// TrackOrderResponse is the customer-visible state of an order.
type TrackOrderResponse struct {
	OrderID         string   `json:"orderId"`
	TrackingID      string   `json:"trackingId"`
	Status          string   `json:"status"`
	Price           string   `json:"price"`
	FailureMessages []string `json:"failureMessages"`
}

// ActiveOrderResponse is one in-flight order in the active orders listing.
type ActiveOrderResponse struct {
	OrderID    string `json:"orderId"`
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
	Price      string `json:"price"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := s.buildCreateOrderCommand(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:    result.OrderID.String(),
		TrackingID: result.TrackingID.String(),
		Status:     result.Status.String(),
	})
}

// PayOrder handles POST /api/v1/orders/:orderID/pay - confirms payment.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewPayOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err = s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveOrder handles POST /api/v1/orders/:orderID/approve - restaurant approval.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err = s.approveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel - requests
// cancellation of a paid order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var request CancelOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewInitCancelOrderCommand(orderID, request.FailureMessages)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if err = s.initCancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackOrder handles GET /api/v1/orders/track/:trackingID - customer order tracking.
func (s *Server) TrackOrder(ctx echo.Context) error {
	trackingID, err := kernel.UUIDFromString(ctx.Param("trackingID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking ID",
		})
	}

	query, err := queries.NewTrackOrderQuery(trackingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	tracked, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackOrderResponse{
		OrderID:         tracked.OrderID.String(),
		TrackingID:      tracked.TrackingID.String(),
		Status:          tracked.Status.String(),
		Price:           tracked.Price.String(),
		FailureMessages: tracked.FailureMessages,
	})
}

// GetActiveOrders handles GET /api/v1/orders/active - lists in-flight orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, activeOrder := range orders {
		response[i] = ActiveOrderResponse{
			OrderID:    activeOrder.OrderID.String(),
			TrackingID: activeOrder.TrackingID.String(),
			Status:     activeOrder.Status.String(),
			Price:      activeOrder.Price.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) buildCreateOrderCommand(request CreateOrderRequest) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	address, err := order.NewDeliveryAddress(request.Address.Street, request.Address.City, request.Address.PostalCode)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	price, err := kernel.MoneyFromString(request.Price)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	lines := make([]commands.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		line, lineErr := buildOrderLine(item)
		if lineErr != nil {
			return commands.CreateOrderCommand{}, lineErr
		}
		lines = append(lines, line)
	}

	return commands.NewCreateOrderCommand(customerID, restaurantID, address, price, lines)
}

func buildOrderLine(item OrderItemRequest) (commands.OrderLine, error) {
	productID, err := kernel.UUIDFromString(item.ProductID)
	if err != nil {
		return commands.OrderLine{}, err
	}

	productPrice, err := kernel.MoneyFromString(item.ProductPrice)
	if err != nil {
		return commands.OrderLine{}, err
	}

	product, err := order.NewProduct(productID, item.ProductName, productPrice)
	if err != nil {
		return commands.OrderLine{}, err
	}

	price, err := kernel.MoneyFromString(item.Price)
	if err != nil {
		return commands.OrderLine{}, err
	}

	subTotal, err := kernel.MoneyFromString(item.SubTotal)
	if err != nil {
		return commands.OrderLine{}, err
	}

	return commands.OrderLine{
		Product:  product,
		Quantity: item.Quantity,
		Price:    price,
		SubTotal: subTotal,
	}, nil
}

// domainError maps application errors to HTTP status codes: missing objects
// become 404, rule violations become 422.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
