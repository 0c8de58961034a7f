package services

import (
	"context"
	"fmt"

	"ecomm/internal/apperrors"
	"ecomm/internal/models"
	"ecomm/internal/repositories"
)

// CartService handles business logic for shopping carts.
type CartService struct {
	cartRepo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
	}
}

// CartPatch is a partial field-set update for a cart entry.
type CartPatch struct {
	ProductID *string
	Quantity  *int
}

// Create inserts a cart entry owned by the caller. Quantity defaults to 1
// when absent; an explicit 0 is allowed, negatives are not.
func (s *CartService) Create(ctx context.Context, cart *models.Cart) error {
	if cart.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative: %w", apperrors.ErrValidation)
	}
	return s.cartRepo.Create(ctx, cart)
}

// Update applies a partial patch and returns the updated cart entry.
func (s *CartService) Update(ctx context.Context, id string, patch CartPatch) (*models.Cart, error) {
	fields := map[string]interface{}{}
	if patch.ProductID != nil {
		fields["product_id"] = *patch.ProductID
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, fmt.Errorf("quantity must not be negative: %w", apperrors.ErrValidation)
		}
		fields["quantity"] = *patch.Quantity
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("nothing to update: %w", apperrors.ErrValidation)
	}
	return s.cartRepo.Update(ctx, id, fields)
}

// Delete removes a cart entry by ID.
func (s *CartService) Delete(ctx context.Context, id string) error {
	return s.cartRepo.Delete(ctx, id)
}

// SelfCart retrieves the caller's cart with product references populated.
func (s *CartService) SelfCart(ctx context.Context, userID string) ([]models.Cart, error) {
	return s.cartRepo.GetByUserWithProduct(ctx, userID)
}

// UserCart retrieves a given user's cart.
func (s *CartService) UserCart(ctx context.Context, userID string) ([]models.Cart, error) {
	return s.cartRepo.GetByUser(ctx, userID)
}

// All retrieves every cart entry.
func (s *CartService) All(ctx context.Context) ([]models.Cart, error) {
	return s.cartRepo.GetAll(ctx)
}
