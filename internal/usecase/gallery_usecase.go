package usecase

import (
	"context"

	"foodcourt/internal/domain/entity"
)

// AddGalleryEntryInput defines the data required to publish a gallery entry.
type AddGalleryEntryInput struct {
	UserEmail   string
	UserName    string
	Description string
	ImageURL    string
}

// GalleryUsecase defines the interface for community gallery business operations.
type GalleryUsecase interface {
	// ListGallery returns every gallery entry, newest first.
	ListGallery(ctx context.Context) ([]*entity.GalleryEntry, error)

	// AddGalleryEntry publishes a new entry.
	AddGalleryEntry(ctx context.Context, input AddGalleryEntryInput) (*entity.GalleryEntry, error)
}
