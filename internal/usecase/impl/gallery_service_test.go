package impl

import (
	"context"
	"testing"

	"foodcourt/internal/domain/entity"
	mockRepo "foodcourt/internal/mocks/repository"
	"foodcourt/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGalleryService_ListGallery(t *testing.T) {
	galleryRepo := mockRepo.NewMockGalleryRepository(t)
	service := NewGalleryService(galleryRepo, newTestLogger())

	ctx := context.Background()

	galleryRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.GalleryEntry{
			{ID: uuid.New(), UserName: "Alice", ImageURL: "https://img.example.com/1.jpg"},
		}, nil)

	entries, err := service.ListGallery(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0].UserName)
}

func TestGalleryService_AddGalleryEntry(t *testing.T) {
	galleryRepo := mockRepo.NewMockGalleryRepository(t)
	service := NewGalleryService(galleryRepo, newTestLogger())

	ctx := context.Background()

	galleryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.GalleryEntry")).
		Return(nil)

	entry, err := service.AddGalleryEntry(ctx, usecase.AddGalleryEntryInput{
		UserEmail:   "alice@example.com",
		UserName:    "Alice",
		Description: "Homemade ramen night",
		ImageURL:    "https://img.example.com/ramen.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", entry.UserEmail)
	assert.Equal(t, "https://img.example.com/ramen.jpg", entry.ImageURL)
}
