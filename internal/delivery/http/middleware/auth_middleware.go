package middleware

import (
	"foodcourt/config"
	domainerrors "foodcourt/internal/domain/errors"
	"foodcourt/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for handlers to consume.
const (
	ContextKeyUserEmail = "userEmail"
	ContextKeyUserName  = "userName"
)

// AuthMiddleware provides middleware for session cookie authentication and
// ownership checks.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the session token carried by the cookie and puts
// the authenticated identity on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.Cookie.Name)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("session cookie is missing")
		}

		claims, err := m.tokenSvc.ValidateToken(cookie.Value)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired session token")
		}

		c.Set(ContextKeyUserEmail, claims.Email)
		c.Set(ContextKeyUserName, claims.Name)

		return next(c)
	}
}

// RequireOwner rejects requests whose email query parameter does not match
// the authenticated identity. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authEmail, ok := c.Get(ContextKeyUserEmail).(string)
		if !ok || authEmail == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("identity missing from context")
		}

		if queryEmail := c.QueryParam("email"); queryEmail != "" && queryEmail != authEmail {
			return domainerrors.ErrForbidden.WrapMessage("email does not match the session identity")
		}

		return next(c)
	}
}

// AuthenticatedEmail returns the email set by Authenticate, or "" when the
// request was not authenticated.
func AuthenticatedEmail(c echo.Context) string {
	email, _ := c.Get(ContextKeyUserEmail).(string)

	return email
}

// AuthenticatedName returns the display name set by Authenticate.
func AuthenticatedName(c echo.Context) string {
	name, _ := c.Get(ContextKeyUserName).(string)

	return name
}
