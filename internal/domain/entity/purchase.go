package entity

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records a completed order of a food item. Purchases are
// immutable once created and are only removed by explicit user action.
type Purchase struct {
	ID         uuid.UUID // The unique identifier for the purchase record.
	FoodID     uuid.UUID // Reference to the purchased food item.
	FoodName   string    // Denormalized name, kept for display after the item changes.
	FoodImage  string    // Denormalized image link.
	Price      float64   // Unit price at the time of purchase.
	Quantity   int       // Units purchased.
	BuyerEmail string    // Email of the buyer.
	BuyerName  string    // Display name of the buyer.
	BuyerPhoto string    // Avatar link of the buyer.
	OrderedAt  time.Time // Client-supplied order date.
	CreatedAt  time.Time // Timestamp of when the record was persisted.
}
