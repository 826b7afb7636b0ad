package impl

import (
	"context"
	"testing"
	"time"

	"foodcourt/config"
	"foodcourt/internal/infra/auth"
	"foodcourt/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionTestService(t *testing.T) usecase.SessionUsecase {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: 30 * time.Minute},
	}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewSessionService(tokenService, newTestMetrics(), newTestLogger())
}

func TestSessionService_IssueToken(t *testing.T) {
	service := newSessionTestService(t)

	output, err := service.IssueToken(context.Background(), usecase.IssueTokenInput{
		Email: "alice@example.com",
		Name:  "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, 30*time.Minute, output.ExpiresIn)
}
