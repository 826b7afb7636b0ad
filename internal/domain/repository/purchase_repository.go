package repository

import (
	"context"

	"foodcourt/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseRepository defines the standard operations for purchase record persistence.
type PurchaseRepository interface {
	// Create persists a new purchase record.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByBuyerEmail retrieves all purchases placed by the given buyer.
	FindByBuyerEmail(ctx context.Context, email string) ([]*entity.Purchase, error)

	// DeleteByID removes a purchase record by ID and reports how many rows
	// were affected. A missing row is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}
