package dto

import (
	"time"

	"github.com/bakhbk/seckit/internal/auth/domain"
)

// TokenResponse represents the API response for an issued access token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ToTokenResponse converts a domain token to a token response.
func ToTokenResponse(token *domain.Token) TokenResponse {
	return TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   token.ExpiresIn,
		ExpiresAt:   token.ExpiresAt,
	}
}
