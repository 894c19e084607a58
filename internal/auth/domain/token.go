// Package domain defines the core authentication domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/bakhbk/seckit/internal/errors"
)

// Token represents an issued access token.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	ExpiresAt   time.Time
}

// Principal represents the authenticated identity attached to a request.
type Principal struct {
	UserID uuid.UUID
	Name   string
}

// Domain-specific errors for authentication operations.
var (
	// ErrInvalidToken indicates the token is malformed, has a bad signature, or is expired.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrMissingSigningSecret indicates the token signing secret is not configured.
	ErrMissingSigningSecret = errors.Wrap(errors.ErrInternal, "missing token signing secret")
)
