package entity

import (
	"time"

	"github.com/google/uuid"
)

// GalleryEntry is a user-uploaded showcase item. Reads require
// authentication; there is no per-entry ownership enforcement.
type GalleryEntry struct {
	ID          uuid.UUID // The unique identifier for the entry.
	UserEmail   string    // Email of the uploader.
	UserName    string    // Display name of the uploader.
	Description string    // Caption shown under the image.
	ImageURL    string    // Link to the uploaded image.
	CreatedAt   time.Time // Timestamp of when the entry was created.
}
