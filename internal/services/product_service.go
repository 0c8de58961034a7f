package services

import (
	"context"
	"fmt"
	"log"

	"ecomm/internal/apperrors"
	"ecomm/internal/models"
	"ecomm/internal/repositories"
)

// ProductService handles business logic for the product catalog, including
// the externally hosted product images.
type ProductService struct {
	repo   repositories.ProductRepository
	assets AssetStore
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, assets AssetStore) *ProductService {
	return &ProductService{
		repo:   repo,
		assets: assets,
	}
}

// ProductPatch is a partial field-set update for a product. Nil fields are
// left untouched. Image, when set, is a new image source that replaces the
// hosted asset.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Categories  []string
	Size        []string
	Color       []string
	Image       *string
}

// GetByID retrieves a single product.
func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves products with the two mutually exclusive query modifiers:
// newest returns exactly the single most recently created product and takes
// precedence; categories returns products whose category set intersects the
// requested ones; absent both, every product is returned.
func (s *ProductService) List(ctx context.Context, newest bool, categories []string) ([]models.Product, error) {
	if newest {
		product, err := s.repo.GetNewest(ctx)
		if err != nil {
			return nil, err
		}
		return []models.Product{*product}, nil
	}
	if len(categories) > 0 {
		return s.repo.GetByCategories(ctx, categories)
	}
	return s.repo.GetAll(ctx)
}

// Create uploads the product image to the asset host and inserts the product
// with the returned secure URL and asset ID.
func (s *ProductService) Create(ctx context.Context, product *models.Product, imageSource string) error {
	if imageSource == "" {
		return fmt.Errorf("image is required: %w", apperrors.ErrValidation)
	}

	url, assetID, err := s.assets.Upload(ctx, imageSource)
	if err != nil {
		return fmt.Errorf("image upload failed (%v): %w", err, apperrors.ErrUpstream)
	}
	product.ImageURL = url
	product.ImageID = assetID

	if err := s.repo.Create(ctx, product); err != nil {
		// The row was never inserted; release the asset so it does not leak.
		if destroyErr := s.assets.Destroy(ctx, assetID); destroyErr != nil {
			log.Printf("Failed to release image %s after create failure: %v", assetID, destroyErr)
		}
		return err
	}
	return nil
}

// Update applies a partial patch. When the patch carries a new image the old
// asset is destroyed and the new source uploaded before the record is saved.
func (s *ProductService) Update(ctx context.Context, id string, patch ProductPatch) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Categories != nil {
		product.Categories = patch.Categories
	}
	if patch.Size != nil {
		product.Size = patch.Size
	}
	if patch.Color != nil {
		product.Color = patch.Color
	}

	if patch.Image != nil {
		if product.ImageID != "" {
			if err := s.assets.Destroy(ctx, product.ImageID); err != nil {
				return nil, fmt.Errorf("failed to destroy old image (%v): %w", err, apperrors.ErrUpstream)
			}
		}
		url, assetID, err := s.assets.Upload(ctx, *patch.Image)
		if err != nil {
			return nil, fmt.Errorf("image upload failed (%v): %w", err, apperrors.ErrUpstream)
		}
		product.ImageURL = url
		product.ImageID = assetID
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the product document and its hosted image together; if the
// asset destroy fails the document removal is rolled back.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteWithImage(ctx, id, func(imageID string) error {
		return s.assets.Destroy(ctx, imageID)
	})
}
