// Package http provides the inbound HTTP adapter. It translates REST requests
// into commands and queries and maps application errors to status codes.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests by coordinating between the REST contract and
// the application use cases.
type Server struct {
	// Command handlers
	createUserHandler        commands.CreateUserCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getUserHandler     queries.GetUserQueryHandler
	getProductsHandler queries.GetProductsQueryHandler
	getOrderHandler    queries.GetOrderQueryHandler
	getOrdersHandler   queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createUserHandler commands.CreateUserCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getUserHandler queries.GetUserQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createUserHandler:        createUserHandler,
		createProductHandler:     createProductHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getUserHandler:           getUserHandler,
		getProductsHandler:       getProductsHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersHandler:         getOrdersHandler,
	}
}

// RegisterRoutes attaches all routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/users", s.CreateUser)
	v1.GET("/users/:id", s.GetUser)
	v1.POST("/products", s.CreateProduct)
	v1.GET("/products", s.GetProducts)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateUser handles POST /api/v1/users - registers a new user.
func (s *Server) CreateUser(ctx echo.Context) error {
	var body NewUser
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	email, err := kernel.NewEmail(body.Email)
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewCreateUserCommand(email, body.Name)
	if err != nil {
		return mapError(ctx, err)
	}

	registered, err := s.createUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userFromAggregate(registered))
}

// GetUser handles GET /api/v1/users/:id - retrieves one user.
func (s *Server) GetUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return mapError(ctx, err)
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return mapError(ctx, err)
	}

	projection, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, User{
		ID:        projection.ID.String(),
		Email:     projection.Email,
		Name:      projection.Name,
		CreatedAt: projection.CreatedAt,
	})
}

// CreateProduct handles POST /api/v1/products - adds a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	price, err := kernel.NewMoneyFromFloat(body.Price, body.Currency)
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(body.Name, body.Description, price, body.SKU, body.Stock)
	if err != nil {
		return mapError(ctx, err)
	}

	added, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productFromAggregate(added))
}

// GetProducts handles GET /api/v1/products - lists catalog products.
// With ?available=true only products with stock on hand are returned.
func (s *Server) GetProducts(ctx echo.Context) error {
	availableOnly := ctx.QueryParam("available") == "true"

	projections, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery(availableOnly))
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]Product, 0, len(projections))
	for _, projection := range projections {
		response = append(response, Product{
			ID:          projection.ID.String(),
			Name:        projection.Name,
			Description: projection.Description,
			Price:       projection.Price.StringFixed(2),
			Currency:    projection.Currency,
			SKU:         projection.SKU,
			Stock:       projection.Stock,
			CreatedAt:   projection.CreatedAt,
			UpdatedAt:   projection.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return mapError(ctx, err)
	}

	lines := make([]commands.OrderItemLine, 0, len(body.Items))
	for _, item := range body.Items {
		productID, lineErr := kernel.UUIDFromString(item.ProductID)
		if lineErr != nil {
			return mapError(ctx, lineErr)
		}

		unitPrice, lineErr := kernel.NewMoneyFromFloat(item.UnitPrice, item.Currency)
		if lineErr != nil {
			return mapError(ctx, lineErr)
		}

		line, lineErr := commands.NewOrderItemLine(productID, item.Quantity, unitPrice)
		if lineErr != nil {
			return mapError(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreateOrderCommand(userID, lines)
	if err != nil {
		return mapError(ctx, err)
	}

	placed, sideEffects, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}
	if failed := sideEffects.FirstError(); failed != nil {
		return errorResponse(ctx, http.StatusBadGateway,
			"Order "+placed.ID().String()+" was saved but a downstream delivery failed: "+failed.Error())
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(placed))
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered by
// ?user_id= and ?status=, most recent first.
func (s *Server) GetOrders(ctx echo.Context) error {
	var userID *kernel.UUID
	if raw := ctx.QueryParam("user_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return mapError(ctx, err)
		}
		userID = &parsed
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return mapError(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(userID, status)
	if err != nil {
		return mapError(ctx, err)
	}

	projections, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]Order, 0, len(projections))
	for _, projection := range projections {
		response = append(response, orderFromProjection(projection))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return mapError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	projection, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromProjection(projection))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - moves an order to
// the requested status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return mapError(ctx, err)
	}

	var body UpdateOrderStatus
	if err = ctx.Bind(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	newStatus, err := order.ParseStatus(body.Status)
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return mapError(ctx, err)
	}

	updated, sideEffects, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}
	if failed := sideEffects.FirstError(); failed != nil {
		return errorResponse(ctx, http.StatusBadGateway,
			"Order "+updated.ID().String()+" was updated but a downstream delivery failed: "+failed.Error())
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order that
// has not started processing yet.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return mapError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	cancelled, sideEffects, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}
	if failed := sideEffects.FirstError(); failed != nil {
		return errorResponse(ctx, http.StatusBadGateway,
			"Order "+cancelled.ID().String()+" was cancelled but a downstream delivery failed: "+failed.Error())
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(cancelled))
}

// mapError translates application and domain errors to HTTP status codes.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, commands.ErrSKUAlreadyRegistered):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, product.ErrInsufficientStock):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, commands.ErrPublishFailed),
		errors.Is(err, commands.ErrNotifyFailed):
		return errorResponse(ctx, http.StatusBadGateway, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
