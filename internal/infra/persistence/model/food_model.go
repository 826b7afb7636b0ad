package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodModel mirrors the 'foods' table. PostgreSQL generates UUIDs via
// gen_random_uuid(), and a CHECK constraint keeps quantity non-negative.
type FoodModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Category      string    `gorm:"type:varchar(100)"`
	Origin        string    `gorm:"type:varchar(100)"`
	Price         float64   `gorm:"type:numeric(10,2);not null;default:0"`
	Quantity      int       `gorm:"not null;default:0;check:quantity >= 0"`
	PurchaseCount int       `gorm:"not null;default:0"`
	OwnerEmail    string    `gorm:"type:varchar(255);not null;index"`
	OwnerName     string    `gorm:"type:varchar(100)"`
	ImageURL      string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "foods"
}
