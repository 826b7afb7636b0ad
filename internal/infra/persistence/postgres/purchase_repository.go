package postgres

import (
	"context"

	"foodcourt/internal/domain/entity"
	domainerrors "foodcourt/internal/domain/errors"
	"foodcourt/internal/domain/repository"
	"foodcourt/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create persists a new purchase order.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required purchase information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt

	return nil
}

// FindByBuyerEmail retrieves the order history for one buyer, newest first.
func (repo *purchaseRepository) FindByBuyerEmail(ctx context.Context, email string) ([]*entity.Purchase, error) {
	var purchaseModels []*model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_email = ?", email).
		Order("created_at DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by buyer")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

// DeleteByID removes a purchase order by ID. A missing row yields zero
// affected rows, not an error.
func (repo *purchaseRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PurchaseModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete purchase")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	return &entity.Purchase{
		ID:         data.ID,
		FoodID:     data.FoodID,
		FoodName:   data.FoodName,
		FoodImage:  data.FoodImage,
		Price:      data.Price,
		Quantity:   data.Quantity,
		BuyerEmail: data.BuyerEmail,
		BuyerName:  data.BuyerName,
		BuyerPhoto: data.BuyerPhoto,
		OrderedAt:  data.OrderedAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:         data.ID,
		FoodID:     data.FoodID,
		FoodName:   data.FoodName,
		FoodImage:  data.FoodImage,
		Price:      data.Price,
		Quantity:   data.Quantity,
		BuyerEmail: data.BuyerEmail,
		BuyerName:  data.BuyerName,
		BuyerPhoto: data.BuyerPhoto,
		OrderedAt:  data.OrderedAt,
	}
}
