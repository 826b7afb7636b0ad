package impl

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/domain/entity"
	domainerrors "foodcourt/internal/domain/errors"
	"foodcourt/internal/domain/repository"
	mockRepo "foodcourt/internal/mocks/repository"
	"foodcourt/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// purchaseServiceFixtures holds all test dependencies for purchase service tests.
type purchaseServiceFixtures struct {
	service      usecase.PurchaseUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	foodRepo     *mockRepo.MockFoodRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
}

func createTestPurchaseService(t *testing.T) purchaseServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewPurchaseService(txManager, newTestMetrics(), newTestLogger())

	return purchaseServiceFixtures{
		service:      service,
		txManager:    txManager,
		factory:      mockRepo.NewMockRepositoryFactory(t),
		foodRepo:     mockRepo.NewMockFoodRepository(t),
		purchaseRepo: mockRepo.NewMockPurchaseRepository(t),
	}
}

// expectTransaction makes Execute run the callback against the mock factory
// and propagate its error, mimicking the real transaction manager.
func (fx purchaseServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestPurchaseService_PlacePurchase_SnapshotsCatalogFields(t *testing.T) {
	fx := createTestPurchaseService(t)
	ctx := context.Background()
	foodID := uuid.New()
	orderedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().FoodRepo().Return(fx.foodRepo)
	fx.factory.EXPECT().PurchaseRepo().Return(fx.purchaseRepo)

	fx.foodRepo.EXPECT().
		FindByID(ctx, foodID).
		Return(&entity.Food{
			ID:       foodID,
			Name:     "Bibimbap",
			Price:    11.0,
			ImageURL: "https://img.example.com/bibimbap.jpg",
			Quantity: 9,
		}, nil)

	fx.purchaseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Purchase")).
		Return(nil)

	purchase, err := fx.service.PlacePurchase(ctx, usecase.PlacePurchaseInput{
		FoodID:     foodID,
		Quantity:   2,
		BuyerEmail: "buyer@example.com",
		BuyerName:  "Buyer",
		OrderedAt:  orderedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bibimbap", purchase.FoodName)
	assert.Equal(t, "https://img.example.com/bibimbap.jpg", purchase.FoodImage)
	assert.InDelta(t, 11.0, purchase.Price, 0.001)
	assert.Equal(t, 2, purchase.Quantity)
	assert.Equal(t, orderedAt, purchase.OrderedAt)
}

func TestPurchaseService_PlacePurchase_FoodNotFound(t *testing.T) {
	fx := createTestPurchaseService(t)
	ctx := context.Background()
	foodID := uuid.New()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().FoodRepo().Return(fx.foodRepo)
	fx.factory.EXPECT().PurchaseRepo().Return(fx.purchaseRepo)

	fx.foodRepo.EXPECT().
		FindByID(ctx, foodID).
		Return(nil, repository.ErrFoodNotFound)

	purchase, err := fx.service.PlacePurchase(ctx, usecase.PlacePurchaseInput{
		FoodID:     foodID,
		Quantity:   1,
		BuyerEmail: "buyer@example.com",
	})
	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}

func TestPurchaseService_PlacePurchase_InvalidQuantity(t *testing.T) {
	fx := createTestPurchaseService(t)

	purchase, err := fx.service.PlacePurchase(context.Background(), usecase.PlacePurchaseInput{
		FoodID:     uuid.New(),
		Quantity:   0,
		BuyerEmail: "buyer@example.com",
	})
	require.Error(t, err)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestPurchaseService_ListPurchasesByBuyer(t *testing.T) {
	fx := createTestPurchaseService(t)
	ctx := context.Background()

	history := []*entity.Purchase{
		{ID: uuid.New(), FoodName: "Bibimbap", BuyerEmail: "buyer@example.com"},
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().PurchaseRepo().Return(fx.purchaseRepo)

	fx.purchaseRepo.EXPECT().
		FindByBuyerEmail(ctx, "buyer@example.com").
		Return(history, nil)

	purchases, err := fx.service.ListPurchasesByBuyer(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Len(t, purchases, 1)
	assert.Equal(t, "Bibimbap", purchases[0].FoodName)
}

func TestPurchaseService_DeletePurchase_MissingRowIsNotAnError(t *testing.T) {
	fx := createTestPurchaseService(t)
	ctx := context.Background()
	purchaseID := uuid.New()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().PurchaseRepo().Return(fx.purchaseRepo)

	fx.purchaseRepo.EXPECT().
		DeleteByID(ctx, purchaseID).
		Return(int64(0), nil)

	deleted, err := fx.service.DeletePurchase(ctx, purchaseID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
