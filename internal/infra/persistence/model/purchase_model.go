package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel mirrors the 'purchases' table. Food fields are denormalized
// so the order history survives edits to the catalog item.
type PurchaseModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FoodID     uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodName   string    `gorm:"type:varchar(255)"`
	FoodImage  string    `gorm:"type:text"`
	Price      float64   `gorm:"type:numeric(10,2);not null;default:0"`
	Quantity   int       `gorm:"not null;default:1"`
	BuyerEmail string    `gorm:"type:varchar(255);not null;index"`
	BuyerName  string    `gorm:"type:varchar(100)"`
	BuyerPhoto string    `gorm:"type:text"`
	OrderedAt  time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
