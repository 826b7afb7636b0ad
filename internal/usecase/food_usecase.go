// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"foodcourt/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateFoodInput defines the data required to list a new food item.
type CreateFoodInput struct {
	Name        string
	Description string
	Category    string
	Origin      string
	Price       float64
	Quantity    int
	OwnerEmail  string
	OwnerName   string
	ImageURL    string
}

// UpdateFoodInput defines the editable fields of an existing food item.
type UpdateFoodInput struct {
	Name        string
	Description string
	Category    string
	Origin      string
	Price       float64
	Quantity    int
	ImageURL    string
}

// AdjustStockInput defines an inventory adjustment after a confirmed order.
type AdjustStockInput struct {
	FoodID   uuid.UUID
	Quantity int
}

// FoodUsecase defines the interface for food catalog business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type FoodUsecase interface {
	// ListFoods returns the whole catalog, newest first.
	ListFoods(ctx context.Context) ([]*entity.Food, error)

	// GetFood returns a single catalog item.
	GetFood(ctx context.Context, id uuid.UUID) (*entity.Food, error)

	// ListFoodsByOwner returns the items listed by one owner.
	ListFoodsByOwner(ctx context.Context, ownerEmail string) ([]*entity.Food, error)

	// CreateFood lists a new item in the catalog.
	CreateFood(ctx context.Context, input CreateFoodInput) (*entity.Food, error)

	// UpdateFood replaces the editable fields of an item.
	UpdateFood(ctx context.Context, id uuid.UUID, input UpdateFoodInput) error

	// DeleteFood removes an item and reports how many rows went away.
	DeleteFood(ctx context.Context, id uuid.UUID) (int64, error)

	// AdjustStock atomically decrements stock after an order and bumps the
	// purchase counter. Rejections surface as ErrInvalidQuantity,
	// ErrFoodNotFound or ErrInsufficientStock.
	AdjustStock(ctx context.Context, input AdjustStockInput) (*entity.StockAdjustment, error)
}
