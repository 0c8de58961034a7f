package handlers

import (
	"ecomm/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for the payment bridge.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the payment routes, both behind auth.
func (h *PaymentHandler) RegisterRoutes(api fiber.Router, auth fiber.Handler) {
	api.Post("/sendStripeKey", auth, h.HandleSendStripeKey)
	api.Post("/captureStripePayment", auth, h.HandleCaptureStripePayment)
}

// HandleSendStripeKey returns the publishable client-side key.
func (h *PaymentHandler) HandleSendStripeKey(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"stripeKey": h.service.PublishableKey(),
	})
}

// CapturePaymentRequest is the request body for creating a payment intent.
type CapturePaymentRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// HandleCaptureStripePayment creates a payment intent and returns the client
// secret with the echoed amount.
func (h *PaymentHandler) HandleCaptureStripePayment(c *fiber.Ctx) error {
	var req CapturePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	secret, err := h.service.CapturePayment(c.UserContext(), req.Amount)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"client_secret": secret,
		"amount":        req.Amount,
	})
}
