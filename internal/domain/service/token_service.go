package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new signed session token for the identity.
	GenerateToken(email, name string) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns the embedded claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured session token lifetime.
	GetTokenDuration() time.Duration
}
