package impl

import (
	"context"
	"testing"

	"foodcourt/internal/domain/entity"
	domainerrors "foodcourt/internal/domain/errors"
	"foodcourt/internal/domain/repository"
	mockRepo "foodcourt/internal/mocks/repository"
	"foodcourt/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// foodServiceFixtures holds all test dependencies for food service tests.
type foodServiceFixtures struct {
	service  usecase.FoodUsecase
	foodRepo *mockRepo.MockFoodRepository
}

func createTestFoodService(t *testing.T) foodServiceFixtures {
	foodRepo := mockRepo.NewMockFoodRepository(t)
	service := NewFoodService(foodRepo, newTestMetrics(), newTestLogger())

	return foodServiceFixtures{
		service:  service,
		foodRepo: foodRepo,
	}
}

func TestFoodService_ListFoods(t *testing.T) {
	fx := createTestFoodService(t)
	ctx := context.Background()

	catalog := []*entity.Food{
		{ID: uuid.New(), Name: "Ramen", Quantity: 5},
		{ID: uuid.New(), Name: "Gyoza", Quantity: 12},
	}

	fx.foodRepo.EXPECT().
		FindAll(ctx).
		Return(catalog, nil)

	foods, err := fx.service.ListFoods(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
	assert.Equal(t, "Ramen", foods[0].Name)
}

func TestFoodService_GetFood_NotFound(t *testing.T) {
	fx := createTestFoodService(t)
	ctx := context.Background()
	foodID := uuid.New()

	fx.foodRepo.EXPECT().
		FindByID(ctx, foodID).
		Return(nil, repository.ErrFoodNotFound)

	food, err := fx.service.GetFood(ctx, foodID)
	require.Error(t, err)
	assert.Nil(t, food)
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}

func TestFoodService_CreateFood(t *testing.T) {
	fx := createTestFoodService(t)
	ctx := context.Background()

	fx.foodRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Food")).
		Return(nil)

	food, err := fx.service.CreateFood(ctx, usecase.CreateFoodInput{
		Name:       "Pad Thai",
		Category:   "noodles",
		Origin:     "Thailand",
		Price:      8.5,
		Quantity:   20,
		OwnerEmail: "chef@example.com",
		OwnerName:  "Chef",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pad Thai", food.Name)
	assert.Equal(t, 20, food.Quantity)
	assert.Equal(t, "chef@example.com", food.OwnerEmail)
}

func TestFoodService_CreateFood_NegativeQuantity(t *testing.T) {
	fx := createTestFoodService(t)

	food, err := fx.service.CreateFood(context.Background(), usecase.CreateFoodInput{
		Name:     "Pad Thai",
		Quantity: -1,
	})
	require.Error(t, err)
	assert.Nil(t, food)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestFoodService_UpdateFood_PreservesOwner(t *testing.T) {
	fx := createTestFoodService(t)
	ctx := context.Background()
	foodID := uuid.New()

	fx.foodRepo.EXPECT().
		FindByID(ctx, foodID).
		Return(&entity.Food{
			ID:         foodID,
			Name:       "Old name",
			OwnerEmail: "chef@example.com",
			OwnerName:  "Chef",
		}, nil)

	fx.foodRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Food")).
		Run(func(_ context.Context, food *entity.Food) {
			assert.Equal(t, "New name", food.Name)
			assert.Equal(t, "chef@example.com", food.OwnerEmail)
			assert.Equal(t, "Chef", food.OwnerName)
		}).
		Return(nil)

	err := fx.service.UpdateFood(ctx, foodID, usecase.UpdateFoodInput{
		Name:     "New name",
		Quantity: 3,
	})
	require.NoError(t, err)
}

func TestFoodService_UpdateFood_NotFound(t *testing.T) {
	fx := createTestFoodService(t)
	ctx := context.Background()
	foodID := uuid.New()

	fx.foodRepo.EXPECT().
		FindByID(ctx, foodID).
		Return(nil, repository.ErrFoodNotFound)

	err := fx.service.UpdateFood(ctx, foodID, usecase.UpdateFoodInput{Name: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}

func TestFoodService_DeleteFood_MissingRowIsNotAnError(t *testing.T) {
	fx := createTestFoodService(t)
	ctx := context.Background()
	foodID := uuid.New()

	fx.foodRepo.EXPECT().
		DeleteByID(ctx, foodID).
		Return(int64(0), nil)

	deleted, err := fx.service.DeleteFood(ctx, foodID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestFoodService_AdjustStock(t *testing.T) {
	fx := createTestFoodService(t)
	ctx := context.Background()
	foodID := uuid.New()

	fx.foodRepo.EXPECT().
		DecrementStock(ctx, foodID, 3).
		Return(&entity.StockAdjustment{
			FoodID:        foodID,
			Quantity:      7,
			PurchaseCount: 4,
		}, nil)

	adjustment, err := fx.service.AdjustStock(ctx, usecase.AdjustStockInput{
		FoodID:   foodID,
		Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, adjustment.Quantity)
	assert.Equal(t, 4, adjustment.PurchaseCount)
}

func TestFoodService_AdjustStock_InvalidQuantity(t *testing.T) {
	fx := createTestFoodService(t)

	for _, quantity := range []int{0, -2} {
		adjustment, err := fx.service.AdjustStock(context.Background(), usecase.AdjustStockInput{
			FoodID:   uuid.New(),
			Quantity: quantity,
		})
		require.Error(t, err)
		assert.Nil(t, adjustment)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	}
}

func TestFoodService_AdjustStock_NotFound(t *testing.T) {
	fx := createTestFoodService(t)
	ctx := context.Background()
	foodID := uuid.New()

	fx.foodRepo.EXPECT().
		DecrementStock(ctx, foodID, 1).
		Return(nil, repository.ErrFoodNotFound)

	adjustment, err := fx.service.AdjustStock(ctx, usecase.AdjustStockInput{
		FoodID:   foodID,
		Quantity: 1,
	})
	require.Error(t, err)
	assert.Nil(t, adjustment)
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}

func TestFoodService_AdjustStock_InsufficientStock(t *testing.T) {
	fx := createTestFoodService(t)
	ctx := context.Background()
	foodID := uuid.New()

	fx.foodRepo.EXPECT().
		DecrementStock(ctx, foodID, 10).
		Return(nil, repository.ErrInsufficientStock)

	adjustment, err := fx.service.AdjustStock(ctx, usecase.AdjustStockInput{
		FoodID:   foodID,
		Quantity: 10,
	})
	require.Error(t, err)
	assert.Nil(t, adjustment)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestFoodService_AdjustStock_RepositoryFailure(t *testing.T) {
	fx := createTestFoodService(t)
	ctx := context.Background()
	foodID := uuid.New()

	fx.foodRepo.EXPECT().
		DecrementStock(ctx, foodID, 2).
		Return(nil, errors.New("connection reset"))

	adjustment, err := fx.service.AdjustStock(ctx, usecase.AdjustStockInput{
		FoodID:   foodID,
		Quantity: 2,
	})
	require.Error(t, err)
	assert.Nil(t, adjustment)
	assert.NotErrorIs(t, err, domainerrors.ErrInsufficientStock)
}
