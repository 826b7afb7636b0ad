package handler

import (
	"log/slog"
	"net/http"

	"foodcourt/internal/delivery/http/response"
	"foodcourt/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GalleryHandler holds dependencies for community gallery handlers.
type GalleryHandler struct {
	uc     usecase.GalleryUsecase
	logger *slog.Logger
}

// NewGalleryHandler is the constructor for GalleryHandler, injected by Fx.
func NewGalleryHandler(uc usecase.GalleryUsecase, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{
		uc:     uc,
		logger: logger,
	}
}

type galleryEntryRequest struct {
	UserEmail   string `json:"user_email"`
	UserName    string `json:"user_name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"required"`
}

// List handles listing all gallery entries.
func (h *GalleryHandler) List(c echo.Context) error {
	entries, err := h.uc.ListGallery(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// Add handles publishing a new gallery entry.
func (h *GalleryHandler) Add(c echo.Context) error {
	var req galleryEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gallery input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.AddGalleryEntry(c.Request().Context(), usecase.AddGalleryEntryInput{
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Gallery entry added successfully")
}
