package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodcourt/internal/delivery/http/validator"
	domainerrors "foodcourt/internal/domain/errors"
	"foodcourt/internal/domain/repository"
	"foodcourt/internal/infra/metrics"
	mockRepo "foodcourt/internal/mocks/repository"
	"foodcourt/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFoodTestHandler(t *testing.T) (*FoodHandler, *mockRepo.MockFoodRepository) {
	foodRepo := mockRepo.NewMockFoodRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := impl.NewFoodService(foodRepo, metrics.NewCollector(prometheus.NewRegistry()), logger)

	return NewFoodHandler(uc, logger), foodRepo
}

func TestFoodHandler_GetByID_InvalidID(t *testing.T) {
	h, _ := newFoodTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/singleFood/oops", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("oops")

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestFoodHandler_Delete_MissingRowAnswersZeroCount(t *testing.T) {
	h, foodRepo := newFoodTestHandler(t)
	foodID := uuid.New()

	foodRepo.EXPECT().
		DeleteByID(mock.Anything, foodID).
		Return(int64(0), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/myAddedFood/"+foodID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(foodID.String())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted_count":0`)
}

func TestFoodHandler_AdjustStock_InsufficientStock(t *testing.T) {
	h, foodRepo := newFoodTestHandler(t)
	foodID := uuid.New()

	foodRepo.EXPECT().
		DecrementStock(mock.Anything, foodID, 5).
		Return(nil, repository.ErrInsufficientStock)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPatch, "/updateQuantity",
		strings.NewReader(`{"food_id":"`+foodID.String()+`","quantity":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.AdjustStock(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
}

func TestFoodHandler_AdjustStock_ZeroQuantity(t *testing.T) {
	h, _ := newFoodTestHandler(t)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPatch, "/updateQuantity",
		strings.NewReader(`{"food_id":"`+uuid.NewString()+`","quantity":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.AdjustStock(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "INVALID_QUANTITY", appErr.ErrorCode())
}
