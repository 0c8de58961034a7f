package services

import (
	"context"
	"fmt"
	"time"

	"ecomm/internal/apperrors"
	"ecomm/internal/models"
	"ecomm/internal/repositories"
)

// UserService handles business logic for user accounts.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetByID retrieves a single user.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateDetails patches the caller's username and/or email. At least one of
// the two must be provided.
func (s *UserService) UpdateDetails(ctx context.Context, id string, username, email *string) (*models.User, error) {
	fields := map[string]interface{}{}
	if username != nil {
		fields["username"] = *username
	}
	if email != nil {
		fields["email"] = *email
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("change something to send an update request: %w", apperrors.ErrValidation)
	}
	return s.userRepo.Update(ctx, id, fields)
}

// Delete removes a user by ID.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}

// GetAll retrieves every user, or only the five newest when newest is set.
func (s *UserService) GetAll(ctx context.Context, newest bool) ([]models.User, error) {
	if newest {
		return s.userRepo.GetNewest(ctx, 5)
	}
	return s.userRepo.GetAll(ctx)
}

// SignupStats counts users created in the last 365 days, grouped by calendar
// month of creation. The result maps month number (1-12) to count. The window
// filter runs in the database; grouping happens here.
func (s *UserService) SignupStats(ctx context.Context) (map[int]int, error) {
	lastYear := time.Now().AddDate(-1, 0, 0)
	users, err := s.userRepo.CreatedSince(ctx, lastYear)
	if err != nil {
		return nil, err
	}

	stats := make(map[int]int)
	for _, u := range users {
		stats[int(u.CreatedAt.Month())]++
	}
	return stats, nil
}
