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

func TestUserService_UpdateDetails(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)
	ctx := context.Background()

	// Empty patch is a validation error and never reaches the repository.
	_, err := userService.UpdateDetails(ctx, "user-1", nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "Update")

	// Only the provided fields are patched.
	username := "newname"
	updated := &models.User{ID: "user-1", Username: username}
	mockRepo.On("Update", ctx, "user-1", map[string]interface{}{"username": username}).Return(updated, nil).Once()
	user, err := userService.UpdateDetails(ctx, "user-1", &username, nil)
	assert.NoError(t, err)
	assert.Equal(t, username, user.Username)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetAll(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)
	ctx := context.Background()

	all := []models.User{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	mockRepo.On("GetAll", ctx).Return(all, nil).Once()
	users, err := userService.GetAll(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, users, 3)

	// The "new" modifier asks for the five newest.
	mockRepo.On("GetNewest", ctx, 5).Return(all[:2], nil).Once()
	users, err = userService.GetAll(ctx, true)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	mockRepo.AssertExpectations(t)
}

func TestUserService_SignupStats(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo)
	ctx := context.Background()

	now := time.Now()
	lastMonth := now.AddDate(0, -1, 0)
	users := []models.User{
		{ID: "1", CreatedAt: now},
		{ID: "2", CreatedAt: now},
		{ID: "3", CreatedAt: lastMonth},
	}

	mockRepo.On("CreatedSince", ctx, mock.MatchedBy(func(since time.Time) bool {
		// Window starts one year back.
		expected := now.AddDate(-1, 0, 0)
		return since.Sub(expected).Abs() < time.Minute
	})).Return(users, nil).Once()

	stats, err := userService.SignupStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, stats[int(now.Month())])
	assert.Equal(t, 1, stats[int(lastMonth.Month())])
	mockRepo.AssertExpectations(t)
}
