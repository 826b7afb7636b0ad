package usecase

import (
	"context"
	"time"
)

// IssueTokenInput defines the identity a session token is issued for.
type IssueTokenInput struct {
	Email string
	Name  string
}

// IssueTokenOutput returns the signed token and its lifetime, so the
// delivery layer can align the cookie expiry with the token expiry.
type IssueTokenOutput struct {
	Token     string
	ExpiresIn time.Duration
}

// SessionUsecase defines the interface for session token operations.
type SessionUsecase interface {
	// IssueToken signs a session token for the given identity.
	IssueToken(ctx context.Context, input IssueTokenInput) (*IssueTokenOutput, error)
}
