package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway creates payment intents through the Stripe API in a fixed
// currency. No idempotency key is attached; the processor owns intent
// lifecycle, so retried calls create duplicate intents.
type StripeGateway struct {
	api      *client.API
	currency string
}

// NewStripeGateway creates a gateway using the given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{
		api:      api,
		currency: string(stripe.CurrencyINR),
	}
}

// CreateIntent creates a payment intent for the amount (in the currency's
// smallest unit) and returns the client-usable secret.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(g.currency),
	}
	params.Context = ctx
	params.AddMetadata("integration_check", "accept_a_payment")

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
