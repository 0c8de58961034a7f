package repositories

import (
	"context"
	"errors"
	"fmt"

	"ecomm/internal/apperrors"
	"ecomm/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product. A duplicate name surfaces as ErrConflict.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("product name '%s': %w", product.Name, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Update saves the full product record. Save writes all fields, so callers
// load the record and apply their patch before calling.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).Save(product)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("product name '%s': %w", product.Name, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to update product %s: %w", product.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", product.ID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteWithImage removes the product and its hosted image atomically. The
// asset destroy runs inside the row-delete transaction, so a failed destroy
// rolls the document removal back.
func (r *GORMProductRepository) DeleteWithImage(ctx context.Context, id string, destroyImage func(imageID string) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to load product %s for deletion: %w", id, err)
		}
		if err := tx.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete product %s: %w", id, err)
		}
		if product.ImageID != "" {
			if err := destroyImage(product.ImageID); err != nil {
				return fmt.Errorf("failed to destroy image %s for product %s: %w (%v)", product.ImageID, id, apperrors.ErrUpstream, err)
			}
		}
		return nil
	})
}

// GetAll retrieves every product.
func (r *GORMProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetNewest retrieves the single most recently created product.
func (r *GORMProductRepository) GetNewest(ctx context.Context) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Order("created_at DESC").First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no products: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get newest product: %w", err)
	}
	return &product, nil
}

// GetByCategories retrieves all products whose category set intersects the
// requested categories. The category column is serialized JSON, so the
// intersection is computed here rather than in SQL; json querying differs
// between the sqlite used in tests and postgres.
func (r *GORMProductRepository) GetByCategories(ctx context.Context, categories []string) ([]models.Product, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Product, 0, len(all))
	for _, p := range all {
		if p.HasCategory(categories) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
