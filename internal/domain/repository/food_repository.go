// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"foodcourt/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFoodNotFound is a domain-specific error returned when a food item is not found.
var ErrFoodNotFound = errors.New("food not found")

// ErrInsufficientStock is returned when a stock decrement would drive the
// quantity below zero. The conditional update rejects the adjustment instead.
var ErrInsufficientStock = errors.New("insufficient stock")

// FoodRepository defines the standard operations for food item persistence.
// The application layer will depend on this interface, not the concrete implementation.
type FoodRepository interface {
	// FindAll retrieves every food item in the catalog.
	FindAll(ctx context.Context) ([]*entity.Food, error)

	// FindByID retrieves a single food item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)

	// FindByOwnerEmail retrieves all food items listed by the given owner.
	FindByOwnerEmail(ctx context.Context, email string) ([]*entity.Food, error)

	// Create persists a new food item to the storage.
	Create(ctx context.Context, food *entity.Food) error

	// Update replaces the editable fields of an existing food item.
	Update(ctx context.Context, food *entity.Food) error

	// DeleteByID removes a food item by ID and reports how many rows were
	// affected. A missing row is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)

	// DecrementStock atomically subtracts quantity units of stock and bumps
	// the purchase counter in a single conditional update. It returns
	// ErrFoodNotFound when the row does not exist and ErrInsufficientStock
	// when the remaining stock cannot cover the request.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.StockAdjustment, error)
}
