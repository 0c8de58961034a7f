package repositories

import (
	"context"
	"time"

	"ecomm/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetNewest(ctx context.Context, limit int) ([]models.User, error)
	CreatedSince(ctx context.Context, since time.Time) ([]models.User, error)
}
