package services

import (
	"context"
	"fmt"

	"ecomm/internal/apperrors"
)

// PaymentService bridges payment-intent creation to the upstream processor.
type PaymentService struct {
	gateway        PaymentGateway
	publishableKey string
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(gateway PaymentGateway, publishableKey string) *PaymentService {
	return &PaymentService{
		gateway:        gateway,
		publishableKey: publishableKey,
	}
}

// PublishableKey returns the client-side API key.
func (s *PaymentService) PublishableKey() string {
	return s.publishableKey
}

// CapturePayment creates a payment intent for the amount and returns the
// client secret. No idempotency key is attached; retried calls create
// duplicate intents and the processor remains the source of truth.
func (s *PaymentService) CapturePayment(ctx context.Context, amount int64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	secret, err := s.gateway.CreateIntent(ctx, amount)
	if err != nil {
		return "", fmt.Errorf("payment intent creation failed (%v): %w", err, apperrors.ErrUpstream)
	}
	return secret, nil
}
