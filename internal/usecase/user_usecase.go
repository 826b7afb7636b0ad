package usecase

import (
	"context"

	"foodcourt/internal/domain/entity"
)

// RegisterUserInput defines the data required to record a user profile.
type RegisterUserInput struct {
	Email    string
	Name     string
	PhotoURL string
}

// UserUsecase defines the interface for user profile business operations.
type UserUsecase interface {
	// RegisterUser records a user profile. Each call creates a fresh row;
	// email uniqueness is deliberately not enforced.
	RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error)
}
