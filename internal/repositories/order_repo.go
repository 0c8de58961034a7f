package repositories

import (
	"context"
	"time"

	"ecomm/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Order, error)
	Delete(ctx context.Context, id string) error
	GetByUser(ctx context.Context, userID string) ([]models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	CreatedSince(ctx context.Context, since time.Time) ([]models.Order, error)
}
