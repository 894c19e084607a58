// Package service provides authentication-related services for token signing and password hashing.
package service

import (
	"github.com/bakhbk/seckit/internal/auth/domain"
)

// TokenService signs and verifies access tokens.
type TokenService interface {
	// Sign issues a signed token for the given principal.
	Sign(principal domain.Principal) (*domain.Token, error)

	// Verify parses and validates a signed token and returns its principal.
	Verify(accessToken string) (*domain.Principal, error)
}
