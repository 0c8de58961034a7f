package handlers

import (
	"ecomm/internal/models"
	"ecomm/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders and the revenue report.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes. Self operations require auth;
// management and the revenue report additionally require the admin gate.
func (h *OrderHandler) RegisterRoutes(api fiber.Router, auth, admin fiber.Handler) {
	api.Post("/createOrder", auth, h.HandleCreateOrder)
	api.Get("/getSelfOrders", auth, h.HandleGetSelfOrders)

	api.Put("/updateOrder/:id", auth, admin, h.HandleUpdateOrder)
	api.Delete("/deleteOrder/:id", auth, admin, h.HandleDeleteOrder)
	api.Get("/getCertainUserOrder/:userId", auth, admin, h.HandleGetCertainUserOrder)
	api.Get("/getAllOrders", auth, admin, h.HandleGetAllOrders)
	api.Get("/getLastMonthIncome", auth, admin, h.HandleGetLastMonthIncome)
}

// CreateOrderRequest is the request body for creating an order.
type CreateOrderRequest struct {
	OrderItems []models.OrderItem `json:"orderItems" validate:"required,min=1,dive"`
	Amount     float64            `json:"amount" validate:"gte=0"`
	Address    models.Address     `json:"address" validate:"required"`
}

// HandleCreateOrder inserts an order owned by the caller.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	order := &models.Order{
		UserID:  callerID(c),
		Items:   req.OrderItems,
		Amount:  req.Amount,
		Address: req.Address,
	}
	if err := h.service.Create(c.UserContext(), order); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// HandleGetSelfOrders returns the caller's orders.
func (h *OrderHandler) HandleGetSelfOrders(c *fiber.Ctx) error {
	orders, err := h.service.SelfOrders(c.UserContext(), callerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// UpdateOrderRequest is the request body for patching an order.
type UpdateOrderRequest struct {
	Status  *string         `json:"status"`
	Amount  *float64        `json:"amount" validate:"omitempty,gte=0"`
	Address *models.Address `json:"address"`
}

// HandleUpdateOrder patches an order by ID.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	var req UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	order, err := h.service.Update(c.UserContext(), c.Params("id"), services.OrderPatch{
		Status:  req.Status,
		Amount:  req.Amount,
		Address: req.Address,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"updatedOrder": order,
	})
}

// HandleDeleteOrder removes an order by ID.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order successfully deleted",
	})
}

// HandleGetCertainUserOrder returns a given user's orders.
func (h *OrderHandler) HandleGetCertainUserOrder(c *fiber.Ctx) error {
	orders, err := h.service.UserOrders(c.UserContext(), c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// HandleGetAllOrders returns every order.
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.All(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// HandleGetLastMonthIncome returns revenue per calendar month over the last
// two months.
func (h *OrderHandler) HandleGetLastMonthIncome(c *fiber.Ctx) error {
	income, err := h.service.MonthlyIncome(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"income":  income,
	})
}
