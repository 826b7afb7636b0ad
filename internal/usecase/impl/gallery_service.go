package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodcourt/internal/delivery/context"
	"foodcourt/internal/domain/entity"
	"foodcourt/internal/domain/repository"
	"foodcourt/internal/usecase"

	"github.com/pkg/errors"
)

// galleryService implements the GalleryUsecase interface.
type galleryService struct {
	galleryRepo repository.GalleryRepository
	logger      *slog.Logger
}

// NewGalleryService is the constructor for galleryService.
func NewGalleryService(
	galleryRepo repository.GalleryRepository,
	logger *slog.Logger,
) usecase.GalleryUsecase {
	return &galleryService{
		galleryRepo: galleryRepo,
		logger:      logger,
	}
}

func (srv *galleryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListGallery returns every gallery entry, newest first.
func (srv *galleryService) ListGallery(ctx context.Context) ([]*entity.GalleryEntry, error) {
	entries, err := srv.galleryRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list gallery entries", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list gallery entries")
	}

	return entries, nil
}

// AddGalleryEntry publishes a new entry.
func (srv *galleryService) AddGalleryEntry(ctx context.Context, input usecase.AddGalleryEntryInput) (*entity.GalleryEntry, error) {
	entry := &entity.GalleryEntry{
		UserEmail:   input.UserEmail,
		UserName:    input.UserName,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}

	if err := srv.galleryRepo.Create(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to add gallery entry", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add gallery entry")
	}

	srv.log(ctx).Info("Gallery entry added", slog.Any("entry_id", entry.ID))

	return entry, nil
}
