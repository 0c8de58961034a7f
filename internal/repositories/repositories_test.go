package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ecomm/internal/apperrors"
	"ecomm/internal/models"
	"ecomm/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory SQLite database with the same
// TranslateError setting production uses, so duplicate keys map the same way.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}, &models.Order{}))
	return db
}

func TestUserRepository_EmailUnique(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMUserRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &models.User{Username: "first", Email: "dup@example.com", Password: "x"})
	assert.NoError(t, err)

	err = repo.Create(ctx, &models.User{Username: "second", Email: "dup@example.com", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// The failed insert left nothing behind.
	users, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestProductRepository_NameUnique(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &models.Product{Name: "Sneaker", Description: "a", Price: 10})
	assert.NoError(t, err)

	err = repo.Create(ctx, &models.Product{Name: "Sneaker", Description: "b", Price: 20})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	products, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductRepository_QueryModifiers(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	ctx := context.Background()

	now := time.Now()
	seed := []models.Product{
		{Name: "Runner", Description: "d", Categories: []string{"shoes"}, CreatedAt: now.Add(-2 * time.Hour)},
		{Name: "Beanie", Description: "d", Categories: []string{"hats"}, CreatedAt: now.Add(-1 * time.Hour)},
		{Name: "Combo", Description: "d", Categories: []string{"shoes", "hats"}, CreatedAt: now},
	}
	for i := range seed {
		assert.NoError(t, repo.Create(ctx, &seed[i]))
	}

	// Category filter returns products whose set intersects the request.
	matched, err := repo.GetByCategories(ctx, []string{"hats"})
	assert.NoError(t, err)
	names := make([]string, 0, len(matched))
	for _, p := range matched {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Beanie", "Combo"}, names)

	// The newest modifier returns exactly the single latest product.
	newest, err := repo.GetNewest(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Combo", newest.Name)
}

func TestProductRepository_DeleteWithImage(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	ctx := context.Background()

	product := &models.Product{Name: "Sneaker", Description: "d", ImageID: "asset-1"}
	assert.NoError(t, repo.Create(ctx, product))

	// A failing asset destroy rolls the row delete back: both halves stay.
	err := repo.DeleteWithImage(ctx, product.ID, func(imageID string) error {
		return fmt.Errorf("asset host unreachable")
	})
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	still, err := repo.GetByID(ctx, product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "asset-1", still.ImageID)

	// On success both the row and the asset go.
	var destroyed []string
	err = repo.DeleteWithImage(ctx, product.ID, func(imageID string) error {
		destroyed = append(destroyed, imageID)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"asset-1"}, destroyed)
	_, err = repo.GetByID(ctx, product.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting a missing product reports not found.
	err = repo.DeleteWithImage(ctx, "missing", func(string) error { return nil })
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderRepository_CreatedSince(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMOrderRepository(db)
	ctx := context.Background()

	now := time.Now()
	recent1 := models.Order{UserID: "u1", Amount: 100, Status: "pending", Items: []models.OrderItem{{ProductID: "p1", Quantity: 1}}, CreatedAt: now}
	recent2 := models.Order{UserID: "u1", Amount: 50, Status: "pending", Items: []models.OrderItem{{ProductID: "p2", Quantity: 1}}, CreatedAt: now.Add(-time.Hour)}
	old := models.Order{UserID: "u1", Amount: 999, Status: "pending", Items: []models.OrderItem{{ProductID: "p3", Quantity: 1}}, CreatedAt: now.AddDate(0, -3, 0)}
	for _, o := range []*models.Order{&recent1, &recent2, &old} {
		assert.NoError(t, repo.Create(ctx, o))
	}

	// Only orders inside the two-month window come back.
	orders, err := repo.CreatedSince(ctx, now.AddDate(0, -2, 0))
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	var total float64
	for _, o := range orders {
		total += o.Amount
	}
	assert.Equal(t, 150.0, total)
}

func TestCartRepository_PreloadsProduct(t *testing.T) {
	db := newTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	ctx := context.Background()

	product := &models.Product{Name: "Sneaker", Description: "d", Price: 49.99}
	assert.NoError(t, productRepo.Create(ctx, product))

	cart := &models.Cart{UserID: "u1", ProductID: product.ID, Quantity: 2}
	assert.NoError(t, cartRepo.Create(ctx, cart))

	// Self-scoped read populates the product reference.
	entries, err := cartRepo.GetByUserWithProduct(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NotNil(t, entries[0].Product)
	assert.Equal(t, "Sneaker", entries[0].Product.Name)

	// The admin read leaves the reference unpopulated.
	entries, err = cartRepo.GetByUser(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Nil(t, entries[0].Product)

	// Patch updates only the given fields.
	updated, err := cartRepo.Update(ctx, cart.ID, map[string]interface{}{"quantity": 5})
	assert.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, product.ID, updated.ProductID)
}
