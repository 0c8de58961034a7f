package services_test

import (
	"context"
	"testing"
	"time"

	"ecomm/internal/apperrors"
	"ecomm/internal/models"
	"ecomm/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Order, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByUser(ctx context.Context, userID string) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) CreatedSince(ctx context.Context, since time.Time) ([]models.Order, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]models.Order), args.Error(1)
}

func TestOrderService_Create(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	orderService := services.NewOrderService(mockRepo, nil)
	ctx := context.Background()

	order := &models.Order{
		UserID: "user-1",
		Items: []models.OrderItem{
			{ProductID: "prod-1", Quantity: 0},
			{ProductID: "prod-2", Quantity: 3},
		},
		Amount:  129.99,
		Address: models.Address{Place: "12 Main St", Email: "buyer@example.com"},
	}

	mockRepo.On("Create", ctx, order).Return(nil).Once()
	err := orderService.Create(ctx, order)
	assert.NoError(t, err)
	// Absent quantity defaults to 1, explicit quantities are kept, status
	// starts as pending.
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, 3, order.Items[1].Quantity)
	assert.Equal(t, "pending", order.Status)
	mockRepo.AssertExpectations(t)

	// Negative amounts never reach the repository.
	bad := &models.Order{UserID: "user-1", Amount: -5, Items: []models.OrderItem{{ProductID: "p"}}}
	err = orderService.Create(ctx, bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_Update(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	orderService := services.NewOrderService(mockRepo, nil)
	ctx := context.Background()

	status := "shipped"
	updated := &models.Order{ID: "order-1", Status: status}
	mockRepo.On("Update", ctx, "order-1", map[string]interface{}{"status": status}).Return(updated, nil).Once()

	order, err := orderService.Update(ctx, "order-1", services.OrderPatch{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, status, order.Status)
	mockRepo.AssertExpectations(t)

	// Empty patch is a validation error.
	_, err = orderService.Update(ctx, "order-1", services.OrderPatch{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestOrderService_MonthlyIncome(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	orderService := services.NewOrderService(mockRepo, nil)
	ctx := context.Background()

	now := time.Now()
	month := int(now.Month())
	orders := []models.Order{
		{ID: "1", Amount: 100, CreatedAt: now},
		{ID: "2", Amount: 50, CreatedAt: now},
	}

	mockRepo.On("CreatedSince", ctx, mock.MatchedBy(func(since time.Time) bool {
		// Window starts two months back.
		expected := now.AddDate(0, -2, 0)
		return since.Sub(expected).Abs() < time.Minute
	})).Return(orders, nil).Once()

	income, err := orderService.MonthlyIncome(ctx)
	assert.NoError(t, err)
	assert.Len(t, income, 1)
	assert.Equal(t, 150.0, income[month])
	mockRepo.AssertExpectations(t)
}
