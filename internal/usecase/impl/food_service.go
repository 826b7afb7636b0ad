// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodcourt/internal/delivery/context"
	"foodcourt/internal/domain/entity"
	domainerrors "foodcourt/internal/domain/errors"
	"foodcourt/internal/domain/repository"
	"foodcourt/internal/infra/metrics"
	"foodcourt/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// foodService implements the FoodUsecase interface.
type foodService struct {
	foodRepo repository.FoodRepository
	metrics  metrics.MetricsCollector
	logger   *slog.Logger
}

// NewFoodService is the constructor for foodService.
func NewFoodService(
	foodRepo repository.FoodRepository,
	metricsCollector metrics.MetricsCollector,
	logger *slog.Logger,
) usecase.FoodUsecase {
	return &foodService{
		foodRepo: foodRepo,
		metrics:  metricsCollector,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *foodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFoods returns the whole catalog, newest first.
func (srv *foodService) ListFoods(ctx context.Context) ([]*entity.Food, error) {
	foods, err := srv.foodRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list foods", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list foods")
	}

	return foods, nil
}

// GetFood returns a single catalog item.
func (srv *foodService) GetFood(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	food, err := srv.foodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrFoodNotFound.WrapMessage("food does not exist")
		}
		srv.log(ctx).Error("Failed to get food", slog.Any("error", err), slog.Any("food_id", id))

		return nil, errors.Wrap(err, "failed to get food")
	}

	return food, nil
}

// ListFoodsByOwner returns the items listed by one owner.
func (srv *foodService) ListFoodsByOwner(ctx context.Context, ownerEmail string) ([]*entity.Food, error) {
	foods, err := srv.foodRepo.FindByOwnerEmail(ctx, ownerEmail)
	if err != nil {
		srv.log(ctx).Error("Failed to list foods by owner", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list foods by owner")
	}

	return foods, nil
}

// CreateFood lists a new item in the catalog.
func (srv *foodService) CreateFood(ctx context.Context, input usecase.CreateFoodInput) (*entity.Food, error) {
	if input.Quantity < 0 {
		return nil, domainerrors.ErrInvalidQuantity.WrapMessage("initial stock must not be negative")
	}

	food := &entity.Food{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Origin:      input.Origin,
		Price:       input.Price,
		Quantity:    input.Quantity,
		OwnerEmail:  input.OwnerEmail,
		OwnerName:   input.OwnerName,
		ImageURL:    input.ImageURL,
	}

	if err := srv.foodRepo.Create(ctx, food); err != nil {
		srv.log(ctx).Error("Failed to create food", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create food")
	}

	srv.log(ctx).Info("Food created", slog.Any("food_id", food.ID), slog.String("owner", food.OwnerEmail))

	return food, nil
}

// UpdateFood replaces the editable fields of an item.
func (srv *foodService) UpdateFood(ctx context.Context, id uuid.UUID, input usecase.UpdateFoodInput) error {
	if input.Quantity < 0 {
		return domainerrors.ErrInvalidQuantity.WrapMessage("stock must not be negative")
	}

	// Load the current item first so the owner attribution is preserved.
	current, err := srv.foodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return domainerrors.ErrFoodNotFound.WrapMessage("food does not exist")
		}

		return errors.Wrap(err, "failed to load food for update")
	}

	food := &entity.Food{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Origin:      input.Origin,
		Price:       input.Price,
		Quantity:    input.Quantity,
		OwnerEmail:  current.OwnerEmail,
		OwnerName:   current.OwnerName,
		ImageURL:    input.ImageURL,
	}

	if err := srv.foodRepo.Update(ctx, food); err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return domainerrors.ErrFoodNotFound.WrapMessage("food does not exist")
		}
		srv.log(ctx).Error("Failed to update food", slog.Any("error", err), slog.Any("food_id", id))

		return errors.Wrap(err, "failed to update food")
	}

	srv.log(ctx).Info("Food updated", slog.Any("food_id", id))

	return nil
}

// DeleteFood removes an item and reports how many rows went away.
func (srv *foodService) DeleteFood(ctx context.Context, id uuid.UUID) (int64, error) {
	deleted, err := srv.foodRepo.DeleteByID(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to delete food", slog.Any("error", err), slog.Any("food_id", id))

		return 0, errors.Wrap(err, "failed to delete food")
	}

	srv.log(ctx).Info("Food deleted", slog.Any("food_id", id), slog.Int64("deleted", deleted))

	return deleted, nil
}

// AdjustStock atomically decrements stock after an order and bumps the
// purchase counter.
func (srv *foodService) AdjustStock(ctx context.Context, input usecase.AdjustStockInput) (*entity.StockAdjustment, error) {
	if input.Quantity < 1 {
		srv.metrics.RecordStockRejection("invalid_quantity")

		return nil, domainerrors.ErrInvalidQuantity.WrapMessage("adjustment quantity must be at least 1")
	}

	adjustment, err := srv.foodRepo.DecrementStock(ctx, input.FoodID, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrFoodNotFound):
			srv.metrics.RecordStockRejection("not_found")

			return nil, domainerrors.ErrFoodNotFound.WrapMessage("food does not exist")
		case errors.Is(err, repository.ErrInsufficientStock):
			srv.metrics.RecordStockRejection("insufficient_stock")
			srv.log(ctx).Warn("Stock adjustment rejected",
				slog.Any("food_id", input.FoodID),
				slog.Int("quantity", input.Quantity),
			)

			return nil, domainerrors.ErrInsufficientStock.WrapMessage("remaining stock cannot cover the order")
		default:
			srv.log(ctx).Error("Failed to adjust stock", slog.Any("error", err), slog.Any("food_id", input.FoodID))

			return nil, errors.Wrap(err, "failed to adjust stock")
		}
	}

	srv.metrics.RecordStockAdjustment()
	srv.log(ctx).Info("Stock adjusted",
		slog.Any("food_id", input.FoodID),
		slog.Int("ordered", input.Quantity),
		slog.Int("remaining", adjustment.Quantity),
	)

	return adjustment, nil
}
