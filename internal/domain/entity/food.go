// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Food is a catalog item offered on the marketplace. Quantity and
// PurchaseCount are native integers; quantity never goes below zero.
type Food struct {
	ID            uuid.UUID // The unique identifier for the food item.
	Name          string    // Display name of the dish.
	Description   string    // Free-form description shown on the detail page.
	Category      string    // Cuisine category, e.g. "dessert", "main".
	Origin        string    // Country or region of origin.
	Price         float64   // Unit price in the marketplace currency.
	Quantity      int       // Units currently in stock.
	PurchaseCount int       // Number of completed purchases against this item.
	OwnerEmail    string    // Email of the user who listed the item.
	OwnerName     string    // Display name of the user who listed the item.
	ImageURL      string    // Link to the item's photo.
	CreatedAt     time.Time // Timestamp of when this item was listed.
	UpdatedAt     time.Time // Timestamp of the last modification.
}

// StockAdjustment is the acknowledgment returned after an inventory
// adjustment: the state of the counters after the atomic update.
type StockAdjustment struct {
	FoodID        uuid.UUID
	Quantity      int
	PurchaseCount int
}
