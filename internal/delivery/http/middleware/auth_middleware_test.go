package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodcourt/config"
	domainerrors "foodcourt/internal/domain/errors"
	"foodcourt/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:   &config.AuthConfig{TokenTTL: time.Hour},
		Cookie: &config.CookieConfig{Name: "token"},
	}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"

	return cfg
}

func newAuthTestMiddleware(t *testing.T) (*AuthMiddleware, *config.Config) {
	cfg := newAuthTestConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc, cfg), cfg
}

// passThrough records whether the wrapped handler ran.
func passThrough(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_Authenticate_MissingCookie(t *testing.T) {
	m, _ := newAuthTestMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/myAddedFood", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := m.Authenticate(passThrough(&called))(c)
	require.Error(t, err)
	assert.False(t, called)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "UNAUTHENTICATED", appErr.ErrorCode())
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	m, cfg := newAuthTestMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/myAddedFood", nil)
	req.AddCookie(&http.Cookie{Name: cfg.Cookie.Name, Value: "not-a-jwt"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := m.Authenticate(passThrough(&called))(c)
	require.Error(t, err)
	assert.False(t, called)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	cfg := newAuthTestConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	m := NewAuthMiddleware(tokenSvc, cfg)

	token, err := tokenSvc.GenerateToken("alice@example.com", "Alice")
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/myAddedFood", nil)
	req.AddCookie(&http.Cookie{Name: cfg.Cookie.Name, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err = m.Authenticate(passThrough(&called))(c)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "alice@example.com", AuthenticatedEmail(c))
	assert.Equal(t, "Alice", AuthenticatedName(c))
}

func TestAuthMiddleware_RequireOwner_EmailMismatch(t *testing.T) {
	m, _ := newAuthTestMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/myAddedFood?email=mallory@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserEmail, "alice@example.com")

	called := false
	err := m.RequireOwner(passThrough(&called))(c)
	require.Error(t, err)
	assert.False(t, called)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestAuthMiddleware_RequireOwner_MatchingEmail(t *testing.T) {
	m, _ := newAuthTestMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/myAddedFood?email=alice@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserEmail, "alice@example.com")

	called := false
	err := m.RequireOwner(passThrough(&called))(c)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireOwner_NoQueryEmail(t *testing.T) {
	m, _ := newAuthTestMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/myAddedFood", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserEmail, "alice@example.com")

	called := false
	err := m.RequireOwner(passThrough(&called))(c)
	require.NoError(t, err)
	assert.True(t, called)
}
