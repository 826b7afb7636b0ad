package postgres

import (
	"context"

	"foodcourt/internal/domain/entity"
	domainerrors "foodcourt/internal/domain/errors"
	"foodcourt/internal/domain/repository"
	"foodcourt/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// galleryRepository implements the repository.GalleryRepository interface.
type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository is the constructor for galleryRepository.
func NewGalleryRepository(db *gorm.DB) repository.GalleryRepository {
	return &galleryRepository{
		db: db,
	}
}

// FindAll retrieves every gallery entry, newest first.
func (repo *galleryRepository) FindAll(ctx context.Context) ([]*entity.GalleryEntry, error) {
	var entryModels []*model.GalleryEntryModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find gallery entries")
	}

	entries := make([]*entity.GalleryEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toGalleryDomain(entryM))
	}

	return entries, nil
}

// Create persists a new gallery entry.
func (repo *galleryRepository) Create(ctx context.Context, entry *entity.GalleryEntry) error {
	entryM := fromGalleryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required gallery information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create gallery entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toGalleryDomain(data *model.GalleryEntryModel) *entity.GalleryEntry {
	if data == nil {
		return nil
	}

	return &entity.GalleryEntry{
		ID:          data.ID,
		UserEmail:   data.UserEmail,
		UserName:    data.UserName,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
}

func fromGalleryDomain(data *entity.GalleryEntry) *model.GalleryEntryModel {
	if data == nil {
		return nil
	}

	return &model.GalleryEntryModel{
		ID:          data.ID,
		UserEmail:   data.UserEmail,
		UserName:    data.UserName,
		Description: data.Description,
		ImageURL:    data.ImageURL,
	}
}
