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
	"gorm.io/gorm/clause"
)

// foodRepository implements the repository.FoodRepository interface.
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{
		db: db,
	}
}

// FindAll retrieves every food item in the catalog, newest first.
func (repo *foodRepository) FindAll(ctx context.Context) ([]*entity.Food, error) {
	var foodModels []*model.FoodModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&foodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find foods")
	}

	foods := make([]*entity.Food, 0, len(foodModels))
	for _, foodM := range foodModels {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods, nil
}

// FindByID retrieves a single food item by its unique ID.
func (repo *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var foodM model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by ID")
	}

	return toFoodDomain(&foodM), nil
}

// FindByOwnerEmail retrieves all food items listed by the given owner.
func (repo *foodRepository) FindByOwnerEmail(ctx context.Context, email string) ([]*entity.Food, error) {
	var foodModels []*model.FoodModel

	if err := repo.db.WithContext(ctx).
		Where("owner_email = ?", email).
		Order("created_at DESC").
		Find(&foodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find foods by owner")
	}

	foods := make([]*entity.Food, 0, len(foodModels))
	for _, foodM := range foodModels {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods, nil
}

// Create persists a new food item.
func (repo *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)

	if err := repo.db.WithContext(ctx).Create(foodM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required food information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("quantity must not be negative")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create food")
	}

	// Update the entity with generated values
	food.ID = foodM.ID
	food.CreatedAt = foodM.CreatedAt
	food.UpdatedAt = foodM.UpdatedAt

	return nil
}

// Update replaces the editable fields of an existing food item. The stock
// counters are deliberately excluded; those change only through
// DecrementStock.
func (repo *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FoodModel{}).
		Where("id = ?", food.ID).
		Updates(map[string]any{
			"name":        food.Name,
			"description": food.Description,
			"category":    food.Category,
			"origin":      food.Origin,
			"price":       food.Price,
			"quantity":    food.Quantity,
			"owner_email": food.OwnerEmail,
			"owner_name":  food.OwnerName,
			"image_url":   food.ImageURL,
		})

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required food information")
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("quantity must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update food")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodNotFound
	}

	return nil
}

// DeleteByID removes a food item by ID. A missing row yields zero affected
// rows, not an error.
func (repo *foodRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FoodModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete food")
	}

	return result.RowsAffected, nil
}

// DecrementStock subtracts stock and bumps the purchase counter in a single
// conditional UPDATE, so two concurrent purchases of the last units
// serialize on the row and the loser is rejected instead of driving the
// quantity negative.
func (repo *foodRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.StockAdjustment, error) {
	var updated model.FoodModel

	result := repo.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{Columns: []clause.Column{
			{Name: "quantity"},
			{Name: "purchase_count"},
		}}).
		Where("id = ? AND quantity >= ?", id, quantity).
		Updates(map[string]any{
			"quantity":       gorm.Expr("quantity - ?", quantity),
			"purchase_count": gorm.Expr("purchase_count + 1"),
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from insufficient stock.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.FoodModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return nil, errors.Wrap(err, "failed to check food existence")
		}
		if count == 0 {
			return nil, repository.ErrFoodNotFound
		}

		return nil, repository.ErrInsufficientStock
	}

	return &entity.StockAdjustment{
		FoodID:        id,
		Quantity:      updated.Quantity,
		PurchaseCount: updated.PurchaseCount,
	}, nil
}

// --- Mapper Functions ---

// toFoodDomain converts a GORM FoodModel to a domain Food entity.
func toFoodDomain(data *model.FoodModel) *entity.Food {
	if data == nil {
		return nil
	}

	return &entity.Food{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		Origin:        data.Origin,
		Price:         data.Price,
		Quantity:      data.Quantity,
		PurchaseCount: data.PurchaseCount,
		OwnerEmail:    data.OwnerEmail,
		OwnerName:     data.OwnerName,
		ImageURL:      data.ImageURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromFoodDomain converts a domain Food entity to a GORM FoodModel for persistence.
func fromFoodDomain(data *entity.Food) *model.FoodModel {
	if data == nil {
		return nil
	}

	return &model.FoodModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		Origin:        data.Origin,
		Price:         data.Price,
		Quantity:      data.Quantity,
		PurchaseCount: data.PurchaseCount,
		OwnerEmail:    data.OwnerEmail,
		OwnerName:     data.OwnerName,
		ImageURL:      data.ImageURL,
	}
}
