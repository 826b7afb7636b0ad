package model

import (
	"time"

	"github.com/google/uuid"
)

// GalleryEntryModel mirrors the 'gallery_entries' table.
type GalleryEntryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserEmail   string    `gorm:"type:varchar(255);index"`
	UserName    string    `gorm:"type:varchar(100)"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GalleryEntryModel) TableName() string {
	return "gallery_entries"
}
