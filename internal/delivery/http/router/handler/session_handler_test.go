package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodcourt/config"
	"foodcourt/internal/delivery/http/validator"
	"foodcourt/internal/infra/auth"
	"foodcourt/internal/infra/metrics"
	"foodcourt/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionTestHandler(t *testing.T, crossSite bool) *SessionHandler {
	cfg := &config.Config{
		Auth:   &config.AuthConfig{TokenTTL: time.Hour},
		Cookie: &config.CookieConfig{Name: "token", CrossSite: crossSite},
	}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := impl.NewSessionService(tokenSvc, metrics.NewCollector(prometheus.NewRegistry()), logger)

	return NewSessionHandler(uc, cfg, logger)
}

func sessionCookieFromResponse(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set on response", name)

	return nil
}

func TestSessionHandler_IssueToken_SetsCookie(t *testing.T) {
	h := newSessionTestHandler(t, false)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/jwt",
		strings.NewReader(`{"email":"alice@example.com","name":"Alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.IssueToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "token")

	cookie := sessionCookieFromResponse(t, rec, "token")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.True(t, cookie.Expires.After(time.Now()))
}

func TestSessionHandler_IssueToken_CrossSiteCookiePolicy(t *testing.T) {
	h := newSessionTestHandler(t, true)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/jwt",
		strings.NewReader(`{"email":"alice@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.IssueToken(c))

	cookie := sessionCookieFromResponse(t, rec, "token")
	// SameSite=None is only honored by browsers together with Secure.
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.True(t, cookie.Secure)
}

func TestSessionHandler_IssueToken_InvalidEmail(t *testing.T) {
	h := newSessionTestHandler(t, false)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/jwt",
		strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.IssueToken(c)
	require.Error(t, err)
}

func TestSessionHandler_Logout_ClearsCookie(t *testing.T) {
	h := newSessionTestHandler(t, false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookieFromResponse(t, rec, "token")
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
	assert.True(t, cookie.Expires.Before(time.Now()))
}
