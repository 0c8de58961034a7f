package handlers

import (
	"ecomm/internal/models"
	"ecomm/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for shopping carts.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes. Self operations require auth;
// cross-user reads additionally require the admin gate.
func (h *CartHandler) RegisterRoutes(api fiber.Router, auth, admin fiber.Handler) {
	api.Post("/createCart", auth, h.HandleCreateCart)
	api.Put("/updateCart/:id", auth, h.HandleUpdateCart)
	api.Delete("/deleteCart/:id", auth, h.HandleDeleteCart)
	api.Get("/getSelfCart", auth, h.HandleGetSelfCart)

	api.Get("/getCertainCart/:userId", auth, admin, h.HandleGetCertainCart)
	api.Get("/getAllCarts", auth, admin, h.HandleGetAllCarts)
}

// CreateCartRequest is the request body for creating a cart entry. Quantity
// defaults to 1 when absent; an explicit 0 is allowed.
type CreateCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,gte=0"`
}

// HandleCreateCart inserts a cart entry owned by the caller.
func (h *CartHandler) HandleCreateCart(c *fiber.Ctx) error {
	var req CreateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	cart := &models.Cart{
		UserID:    callerID(c),
		ProductID: req.ProductID,
		Quantity:  quantity,
	}
	if err := h.service.Create(c.UserContext(), cart); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"cart":    cart,
	})
}

// UpdateCartRequest is the request body for patching a cart entry.
type UpdateCartRequest struct {
	ProductID *string `json:"productId"`
	Quantity  *int    `json:"quantity" validate:"omitempty,gte=0"`
}

// HandleUpdateCart patches a cart entry by ID.
func (h *CartHandler) HandleUpdateCart(c *fiber.Ctx) error {
	var req UpdateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	cart, err := h.service.Update(c.UserContext(), c.Params("id"), services.CartPatch{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"updatedCart": cart,
	})
}

// HandleDeleteCart removes a cart entry by ID.
func (h *CartHandler) HandleDeleteCart(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cart deleted successfully",
	})
}

// HandleGetSelfCart returns the caller's cart with products populated.
func (h *CartHandler) HandleGetSelfCart(c *fiber.Ctx) error {
	cart, err := h.service.SelfCart(c.UserContext(), callerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"cart":    cart,
	})
}

// HandleGetCertainCart returns a given user's cart.
func (h *CartHandler) HandleGetCertainCart(c *fiber.Ctx) error {
	cart, err := h.service.UserCart(c.UserContext(), c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"cart":    cart,
	})
}

// HandleGetAllCarts returns every cart entry.
func (h *CartHandler) HandleGetAllCarts(c *fiber.Ctx) error {
	carts, err := h.service.All(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"carts":   carts,
	})
}
