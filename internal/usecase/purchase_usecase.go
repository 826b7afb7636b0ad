package usecase

import (
	"context"
	"time"

	"foodcourt/internal/domain/entity"

	"github.com/google/uuid"
)

// PlacePurchaseInput defines the data required to record a purchase order.
type PlacePurchaseInput struct {
	FoodID     uuid.UUID
	Quantity   int
	BuyerEmail string
	BuyerName  string
	BuyerPhoto string
	OrderedAt  time.Time
}

// PurchaseUsecase defines the interface for purchase order business operations.
type PurchaseUsecase interface {
	// PlacePurchase records a new order, snapshotting the catalog item's
	// name, image and price so the history survives later edits.
	PlacePurchase(ctx context.Context, input PlacePurchaseInput) (*entity.Purchase, error)

	// ListPurchasesByBuyer returns the order history for one buyer.
	ListPurchasesByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Purchase, error)

	// DeletePurchase removes an order and reports how many rows went away.
	DeletePurchase(ctx context.Context, id uuid.UUID) (int64, error)
}
