package handler

import (
	"log/slog"
	"net/http"
	"time"

	"foodcourt/config"
	"foodcourt/internal/delivery/http/response"
	"foodcourt/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session cookie handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// IssueToken signs a session token and sets it as the session cookie.
func (h *SessionHandler) IssueToken(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.IssueToken(c.Request().Context(), usecase.IssueTokenInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, output.ExpiresIn))

	return response.Success(c, http.StatusOK, map[string]string{"token": output.Token}, "Token issued successfully")
}

// Logout clears the session cookie.
func (h *SessionHandler) Logout(c echo.Context) error {
	cookie := h.sessionCookie("", -time.Hour)
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return response.Success(c, http.StatusOK, nil, "Logged out successfully")
}

// sessionCookie builds the session cookie according to the cookie policy.
// Cross-site deployments need SameSite=None, which browsers only accept
// together with the secure flag.
func (h *SessionHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if h.cfg.Cookie.CrossSite {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     h.cfg.Cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   h.cfg.Cookie.Secure || h.cfg.Cookie.CrossSite,
		SameSite: sameSite,
	}
}
