package auth

import (
	"testing"
	"time"

	"foodcourt/config"

	"github.com/stretchr/testify/assert"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: ttl},
	}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(time.Hour))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	token, err := jwtService.GenerateToken("alice@example.com", "Alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "alice@example.com", claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(time.Hour))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuing, err := NewJWTService(newTestConfig(time.Hour))
	assert.NoError(t, err)

	other := newTestConfig(time.Hour)
	other.SecretKey.Session = "a_different_secret_key_for_validation_side"
	validating, err := NewJWTService(other)
	assert.NoError(t, err)

	token, err := issuing.GenerateToken("alice@example.com", "Alice")
	assert.NoError(t, err)

	claims, err := validating.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative TTL produces a token that is already expired.
	jwtService, err := NewJWTService(newTestConfig(-time.Minute))
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken("alice@example.com", "Alice")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_GetTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(2 * time.Hour))
	assert.NoError(t, err)

	assert.Equal(t, 2*time.Hour, jwtService.GetTokenDuration())
}
