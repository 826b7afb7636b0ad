package repository

import (
	"context"

	"foodcourt/internal/domain/entity"
)

// UserRepository defines the standard operations for user profile persistence.
type UserRepository interface {
	// Create persists a new user profile. Uniqueness of email is not
	// enforced at this layer.
	Create(ctx context.Context, user *entity.User) error
}
