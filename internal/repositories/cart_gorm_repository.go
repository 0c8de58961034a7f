package repositories

import (
	"context"
	"fmt"

	"ecomm/internal/apperrors"
	"ecomm/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Create inserts a new cart entry.
func (r *GORMCartRepository) Create(ctx context.Context, cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// Update applies a partial field-set patch and returns the updated cart.
func (r *GORMCartRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Cart, error) {
	res := r.db.WithContext(ctx).Model(&models.Cart{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update cart %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("cart %s: %w", id, apperrors.ErrNotFound)
	}
	var cart models.Cart
	if err := r.db.WithContext(ctx).First(&cart, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload cart %s: %w", id, err)
	}
	return &cart, nil
}

// Delete removes a cart entry by its ID.
func (r *GORMCartRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Cart{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// GetByUserWithProduct retrieves a user's cart entries with each product
// reference populated.
func (r *GORMCartRepository) GetByUserWithProduct(ctx context.Context, userID string) ([]models.Cart, error) {
	var carts []models.Cart
	if err := r.db.WithContext(ctx).Preload("Product").Where("user_id = ?", userID).Find(&carts).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return carts, nil
}

// GetByUser retrieves a user's cart entries without populating products.
func (r *GORMCartRepository) GetByUser(ctx context.Context, userID string) ([]models.Cart, error) {
	var carts []models.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&carts).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return carts, nil
}

// GetAll retrieves every cart entry.
func (r *GORMCartRepository) GetAll(ctx context.Context) ([]models.Cart, error) {
	var carts []models.Cart
	if err := r.db.WithContext(ctx).Find(&carts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all carts: %w", err)
	}
	return carts, nil
}
