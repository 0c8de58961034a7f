package repositories

import (
	"context"

	"ecomm/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	Create(ctx context.Context, cart *models.Cart) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Cart, error)
	Delete(ctx context.Context, id string) error
	// GetByUserWithProduct populates the product reference on each entry.
	GetByUserWithProduct(ctx context.Context, userID string) ([]models.Cart, error)
	GetByUser(ctx context.Context, userID string) ([]models.Cart, error)
	GetAll(ctx context.Context) ([]models.Cart, error)
}
