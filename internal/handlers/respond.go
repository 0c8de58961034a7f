package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ecomm/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// fail maps an error kind onto a status and a fixed user-facing message.
// Raw detail is logged server-side only and never passed through to the
// client.
func fail(c *fiber.Ctx, err error) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)

	status := fiber.StatusInternalServerError
	message := "Something went wrong"
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status, message = fiber.StatusBadRequest, "Invalid request"
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, message = fiber.StatusUnauthorized, "Authentication failed"
	case errors.Is(err, apperrors.ErrForbidden):
		status, message = fiber.StatusForbidden, "Admin only"
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = fiber.StatusNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrConflict):
		status, message = fiber.StatusConflict, "Resource already exists"
	case errors.Is(err, apperrors.ErrUpstream):
		status, message = fiber.StatusBadGateway, "Upstream service failure"
	case errors.Is(err, context.DeadlineExceeded):
		status, message = fiber.StatusGatewayTimeout, "Request timed out"
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// failValidation renders per-field messages for validator errors.
func failValidation(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fail(c, fmt.Errorf("%v: %w", err, apperrors.ErrValidation))
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// badBody rejects an unparseable request body.
func badBody(c *fiber.Ctx, err error) error {
	log.Printf("%s %s: error parsing request body: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Invalid request body",
	})
}

// callerID returns the authenticated caller's user ID from Locals.
func callerID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
