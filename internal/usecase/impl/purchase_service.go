package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "foodcourt/internal/delivery/context"
	"foodcourt/internal/domain/entity"
	domainerrors "foodcourt/internal/domain/errors"
	"foodcourt/internal/domain/repository"
	"foodcourt/internal/infra/metrics"
	"foodcourt/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	txManager repository.TransactionManager
	metrics   metrics.MetricsCollector
	logger    *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(
	txManager repository.TransactionManager,
	metricsCollector metrics.MetricsCollector,
	logger *slog.Logger,
) usecase.PurchaseUsecase {
	return &purchaseService{
		txManager: txManager,
		metrics:   metricsCollector,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlacePurchase records a new order. The catalog item's name, image and
// price are snapshotted inside the same transaction so the order history
// stays coherent even if the listing is edited afterwards.
func (srv *purchaseService) PlacePurchase(ctx context.Context, input usecase.PlacePurchaseInput) (*entity.Purchase, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity.WrapMessage("order quantity must be at least 1")
	}

	var purchase *entity.Purchase

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foodRepo := repoFactory.FoodRepo()
		purchaseRepo := repoFactory.PurchaseRepo()

		// 1. Verify the catalog item exists and snapshot its fields.
		food, err := foodRepo.FindByID(ctx, input.FoodID)
		if err != nil {
			if errors.Is(err, repository.ErrFoodNotFound) {
				return domainerrors.ErrFoodNotFound.WrapMessage("food does not exist")
			}

			return errors.Wrap(err, "failed to find food")
		}

		orderedAt := input.OrderedAt
		if orderedAt.IsZero() {
			orderedAt = time.Now()
		}

		// 2. Record the order.
		purchase = &entity.Purchase{
			FoodID:     food.ID,
			FoodName:   food.Name,
			FoodImage:  food.ImageURL,
			Price:      food.Price,
			Quantity:   input.Quantity,
			BuyerEmail: input.BuyerEmail,
			BuyerName:  input.BuyerName,
			BuyerPhoto: input.BuyerPhoto,
			OrderedAt:  orderedAt,
		}

		if err := purchaseRepo.Create(ctx, purchase); err != nil {
			return errors.Wrap(err, "failed to create purchase")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to place purchase",
			slog.Any("error", err),
			slog.Any("food_id", input.FoodID),
			slog.String("buyer", input.BuyerEmail),
		)

		return nil, err
	}

	srv.metrics.RecordPurchase()
	srv.log(ctx).Info("Purchase placed",
		slog.Any("purchase_id", purchase.ID),
		slog.Any("food_id", purchase.FoodID),
		slog.String("buyer", purchase.BuyerEmail),
	)

	return purchase, nil
}

// ListPurchasesByBuyer returns the order history for one buyer.
func (srv *purchaseService) ListPurchasesByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Purchase, error) {
	var purchases []*entity.Purchase

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PurchaseRepo().FindByBuyerEmail(ctx, buyerEmail)
		if err != nil {
			return errors.Wrap(err, "failed to find purchases")
		}
		purchases = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list purchases", slog.Any("error", err))

		return nil, err
	}

	return purchases, nil
}

// DeletePurchase removes an order and reports how many rows went away.
func (srv *purchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) (int64, error) {
	var deleted int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.PurchaseRepo().DeleteByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete purchase")
		}
		deleted = count

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete purchase", slog.Any("error", err), slog.Any("purchase_id", id))

		return 0, err
	}

	srv.log(ctx).Info("Purchase deleted", slog.Any("purchase_id", id), slog.Int64("deleted", deleted))

	return deleted, nil
}
