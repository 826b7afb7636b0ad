package handler

import (
	"log/slog"
	"net/http"
	"time"

	"foodcourt/internal/delivery/http/middleware"
	"foodcourt/internal/delivery/http/response"
	"foodcourt/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PurchaseHandler holds dependencies for order-related handlers.
type PurchaseHandler struct {
	uc     usecase.PurchaseUsecase
	logger *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(uc usecase.PurchaseUsecase, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		uc:     uc,
		logger: logger,
	}
}

type purchaseRequest struct {
	FoodID     string    `json:"food_id" validate:"required"`
	Quantity   int       `json:"quantity"`
	BuyerEmail string    `json:"buyer_email" validate:"required,email"`
	BuyerName  string    `json:"buyer_name"`
	BuyerPhoto string    `json:"buyer_photo"`
	OrderedAt  time.Time `json:"ordered_at"`
}

// Place handles recording a new purchase order.
func (h *PurchaseHandler) Place(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	foodID, err := uuid.Parse(req.FoodID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "food_id must be a valid UUID")
	}

	purchase, err := h.uc.PlacePurchase(c.Request().Context(), usecase.PlacePurchaseInput{
		FoodID:     foodID,
		Quantity:   req.Quantity,
		BuyerEmail: req.BuyerEmail,
		BuyerName:  req.BuyerName,
		BuyerPhoto: req.BuyerPhoto,
		OrderedAt:  req.OrderedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, purchase, "Purchase placed successfully")
}

// ListMine lists the order history of the authenticated buyer.
func (h *PurchaseHandler) ListMine(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		email = middleware.AuthenticatedEmail(c)
	}

	purchases, err := h.uc.ListPurchasesByBuyer(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchases, "")
}

// Delete removes an order record. A missing row still answers success,
// with a zero deleted count.
func (h *PurchaseHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Purchase id must be a valid UUID")
	}

	deleted, err := h.uc.DeletePurchase(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted_count": deleted}, "")
}
