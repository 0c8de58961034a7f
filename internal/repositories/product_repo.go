package repositories

import (
	"context"

	"ecomm/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	// DeleteWithImage removes the product row and runs destroyImage inside
	// the same transaction; if destroyImage fails the row delete is rolled
	// back, so the document and its asset go together or not at all.
	DeleteWithImage(ctx context.Context, id string, destroyImage func(imageID string) error) error
	GetAll(ctx context.Context) ([]models.Product, error)
	GetNewest(ctx context.Context) (*models.Product, error)
	GetByCategories(ctx context.Context, categories []string) ([]models.Product, error)
}
