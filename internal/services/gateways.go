package services

import "context"

// PaymentGateway creates payment intents with an upstream processor.
type PaymentGateway interface {
	// CreateIntent creates an intent for the amount (smallest currency unit)
	// and returns the client-usable opaque secret.
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

// AssetStore hosts product images externally.
type AssetStore interface {
	// Upload stores the image source and returns its secure URL and the
	// opaque asset ID used for later deletion.
	Upload(ctx context.Context, source string) (url string, id string, err error)
	// Destroy removes an asset by its opaque ID.
	Destroy(ctx context.Context, id string) error
}
