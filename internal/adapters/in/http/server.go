// Package http exposes the order use cases over a REST API built on echo.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	assignNumberHandler    commands.AssignOrderNumberCommandHandler
	addItemHandler         commands.AddItemCommandHandler
	setItemQuantityHandler commands.SetItemQuantityCommandHandler
	removeItemHandler      commands.RemoveItemCommandHandler
	recordPaymentHandler   commands.RecordPaymentCommandHandler

	// Query handlers
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignNumberHandler commands.AssignOrderNumberCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	setItemQuantityHandler commands.SetItemQuantityCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		assignNumberHandler:    assignNumberHandler,
		addItemHandler:         addItemHandler,
		setItemQuantityHandler: setItemQuantityHandler,
		removeItemHandler:      removeItemHandler,
		recordPaymentHandler:   recordPaymentHandler,
		getOrdersHandler:       getOrdersHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders", s.GetOrders)
	e.POST("/api/v1/orders/:orderId/number", s.AssignOrderNumber)
	e.POST("/api/v1/orders/:orderId/items", s.AddItem)
	e.PUT("/api/v1/orders/:orderId/items/:itemId", s.SetItemQuantity)
	e.DELETE("/api/v1/orders/:orderId/items/:itemId", s.RemoveItem)
	e.POST("/api/v1/orders/:orderId/tender", s.RecordPayment)
}

// CreateOrder handles POST /api/v1/orders - opens a new empty order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, CreatedOrderResponse{ID: orderID.String()})
}

// AssignOrderNumber handles POST /api/v1/orders/:orderId/number - stamps the
// next display number on the order. Safe to repeat: an order that already has
// a number gets the same number back.
func (s *Server) AssignOrderNumber(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewAssignOrderNumberCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	number, err := s.assignNumberHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to assign order number",
		})
	}

	return ctx.JSON(http.StatusOK, AssignedNumberResponse{Number: number.Value()})
}

// AddItem handles POST /api/v1/orders/:orderId/items - rings one unit of an
// item onto the order.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req AddItemRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid item ID",
		})
	}

	cmd, err := commands.NewAddItemCommand(orderID, itemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	if handleErr := s.addItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order or item not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to add item",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetItemQuantity handles PUT /api/v1/orders/:orderId/items/:itemId - overwrites
// the quantity of a line already on the order. Quantity zero removes the line.
func (s *Server) SetItemQuantity(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid item ID",
		})
	}

	var req SetQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetItemQuantityCommand(orderID, itemID, req.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid quantity: " + err.Error(),
		})
	}

	if handleErr := s.setItemQuantityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Line item not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to set quantity",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/orders/:orderId/items/:itemId - voids a
// line off the order. Removing an absent line succeeds.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid item ID",
		})
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, itemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	if handleErr := s.removeItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to remove item",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/:orderId/tender - takes payment
// for the order and reports the change due.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	amount, err := decimal.NewFromString(req.AmountTendered)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid amount tendered",
		})
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, amount)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid payment data: " + err.Error(),
		})
	}

	changeDue, err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		case errors.Is(err, commands.ErrOrderHasNoItems),
			errors.Is(err, commands.ErrAmountTenderedIsInsufficient):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to record payment",
			})
		}
	}

	return ctx.JSON(http.StatusOK, RecordPaymentResponse{ChangeDue: changeDue.StringFixed(2)})
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered by
// id or number query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var filter queries.OrderFilter

	if raw := ctx.QueryParam("id"); raw != "" {
		orderID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid order ID",
			})
		}
		filter.OrderID = &orderID
	}

	if raw := ctx.QueryParam("number"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid order number",
			})
		}
		filter.OrderNumber = &number
	}

	query, err := queries.NewGetOrdersQuery(filter)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid filter: " + err.Error(),
		})
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

func toOrderResponse(o queries.GetOrdersQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:               o.ID.String(),
		Number:           o.Number,
		NumberAssignedAt: o.NumberAssignedAt,
		Items:            make([]ItemResponse, len(o.Items)),
	}

	for i, item := range o.Items {
		resp.Items[i] = ItemResponse{
			ItemID:        item.ItemID.String(),
			Name:          item.Name,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice.StringFixed(2),
			ExtendedPrice: item.ExtendedPrice.StringFixed(2),
		}
	}

	if o.TotalDue != nil {
		total := o.TotalDue.StringFixed(2)
		resp.TotalDue = &total
	}

	if o.Tender != nil {
		resp.Tender = &TenderResponse{
			AmountTendered: o.Tender.AmountTendered.StringFixed(2),
			ChangeDue:      o.Tender.ChangeDue.StringFixed(2),
		}
	}

	return resp
}
