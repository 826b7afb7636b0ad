package handler

import (
	"log/slog"
	"net/http"

	"foodcourt/internal/delivery/http/middleware"
	"foodcourt/internal/delivery/http/response"
	"foodcourt/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FoodHandler holds dependencies for catalog-related handlers.
type FoodHandler struct {
	uc     usecase.FoodUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler, injected by Fx.
func NewFoodHandler(uc usecase.FoodUsecase, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		uc:     uc,
		logger: logger,
	}
}

type foodRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Origin      string  `json:"origin"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
}

type adjustStockRequest struct {
	FoodID   string `json:"food_id" validate:"required"`
	Quantity int    `json:"quantity"`
}

// ListAll handles the public catalog listing.
func (h *FoodHandler) ListAll(c echo.Context) error {
	foods, err := h.uc.ListFoods(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "")
}

// GetByID handles the public catalog fetch by id.
func (h *FoodHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Food id must be a valid UUID")
	}

	food, err := h.uc.GetFood(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, food, "")
}

// ListMine lists the foods added by the authenticated owner.
func (h *FoodHandler) ListMine(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		email = middleware.AuthenticatedEmail(c)
	}

	foods, err := h.uc.ListFoodsByOwner(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "")
}

// Create handles listing a new food item. Owner attribution comes from the
// session, never from the request body.
func (h *FoodHandler) Create(c echo.Context) error {
	var req foodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	food, err := h.uc.CreateFood(c.Request().Context(), usecase.CreateFoodInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Origin:      req.Origin,
		Price:       req.Price,
		Quantity:    req.Quantity,
		OwnerEmail:  middleware.AuthenticatedEmail(c),
		OwnerName:   middleware.AuthenticatedName(c),
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, food, "Food added successfully")
}

// Update handles the full update of an item's editable fields.
func (h *FoodHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Food id must be a valid UUID")
	}

	var req foodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateFood(c.Request().Context(), id, usecase.UpdateFoodInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Origin:      req.Origin,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Food updated successfully")
}

// Delete removes an item. A missing row still answers success, with a zero
// deleted count.
func (h *FoodHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Food id must be a valid UUID")
	}

	deleted, err := h.uc.DeleteFood(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted_count": deleted}, "")
}

// AdjustStock handles the inventory adjustment after a confirmed order.
func (h *FoodHandler) AdjustStock(c echo.Context) error {
	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	foodID, err := uuid.Parse(req.FoodID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "food_id must be a valid UUID")
	}

	adjustment, err := h.uc.AdjustStock(c.Request().Context(), usecase.AdjustStockInput{
		FoodID:   foodID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, adjustment, "Stock adjusted successfully")
}
