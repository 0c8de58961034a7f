package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"ecomm/internal/apperrors"
	"ecomm/internal/models"
	"ecomm/internal/repositories"
	"ecomm/pkg/rabbitmq"
)

// OrderService handles business logic for orders and the revenue report.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil; order
// events are then skipped.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// OrderPatch is a partial field-set update for an order.
type OrderPatch struct {
	Status  *string
	Amount  *float64
	Address *models.Address
}

// Create inserts a new order owned by the caller. Status starts as
// "pending"; line quantities default to 1 when absent. An order.created
// event is published best-effort.
func (s *OrderService) Create(ctx context.Context, order *models.Order) error {
	if order.Amount < 0 {
		return fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}
	for i := range order.Items {
		if order.Items[i].Quantity == 0 {
			order.Items[i].Quantity = 1
		}
	}
	order.Status = "pending"

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return err
	}

	if s.mqClient != nil {
		event := rabbitmq.OrderEvent{
			OrderID: order.ID,
			UserID:  order.UserID,
			Status:  order.Status,
			Amount:  order.Amount,
		}
		if err := s.mqClient.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		}
	}
	return nil
}

// SelfOrders retrieves the caller's orders.
func (s *OrderService) SelfOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(ctx, userID)
}

// Update applies a partial patch and returns the updated order.
func (s *OrderService) Update(ctx context.Context, id string, patch OrderPatch) (*models.Order, error) {
	fields := map[string]interface{}{}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
		}
		fields["amount"] = *patch.Amount
	}
	if patch.Address != nil {
		fields["address_place"] = patch.Address.Place
		fields["address_email"] = patch.Address.Email
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("nothing to update: %w", apperrors.ErrValidation)
	}
	return s.orderRepo.Update(ctx, id, fields)
}

// Delete removes an order by ID.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}

// UserOrders retrieves all orders owned by a given user.
func (s *OrderService) UserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(ctx, userID)
}

// All retrieves every order.
func (s *OrderService) All(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

// MonthlyIncome sums order amounts created in the window from two months ago
// to now, grouped by calendar month of creation. The result maps month
// number (1-12) to summed total. The window filter runs in the database;
// grouping happens here.
func (s *OrderService) MonthlyIncome(ctx context.Context) (map[int]float64, error) {
	previousMonth := time.Now().AddDate(0, -2, 0)
	orders, err := s.orderRepo.CreatedSince(ctx, previousMonth)
	if err != nil {
		return nil, err
	}

	income := make(map[int]float64)
	for _, o := range orders {
		income[int(o.CreatedAt.Month())] += o.Amount
	}
	return income, nil
}
