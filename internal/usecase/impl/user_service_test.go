package impl

import (
	"context"
	"testing"

	mockRepo "foodcourt/internal/mocks/repository"
	"foodcourt/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newTestLogger())

	ctx := context.Background()

	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := service.RegisterUser(ctx, usecase.RegisterUserInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		PhotoURL: "https://img.example.com/alice.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
}

func TestUserService_RegisterUser_RepositoryFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo, newTestLogger())

	ctx := context.Background()

	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.New("connection reset"))

	user, err := service.RegisterUser(ctx, usecase.RegisterUserInput{
		Email: "alice@example.com",
	})
	require.Error(t, err)
	assert.Nil(t, user)
}
