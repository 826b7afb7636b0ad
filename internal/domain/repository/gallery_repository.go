package repository

import (
	"context"

	"foodcourt/internal/domain/entity"
)

// GalleryRepository defines the standard operations for gallery entry persistence.
type GalleryRepository interface {
	// FindAll retrieves every gallery entry, newest first.
	FindAll(ctx context.Context) ([]*entity.GalleryEntry, error)

	// Create persists a new gallery entry.
	Create(ctx context.Context, entry *entity.GalleryEntry) error
}
