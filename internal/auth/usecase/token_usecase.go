// Package usecase implements the authentication business logic.
package usecase

import (
	"context"

	"github.com/bakhbk/seckit/internal/auth/domain"
	authService "github.com/bakhbk/seckit/internal/auth/service"
	userUseCase "github.com/bakhbk/seckit/internal/user/usecase"
)

// TokenUseCase defines the interface for token issuance and verification.
type TokenUseCase interface {
	// IssueToken checks the credentials and returns a signed access token.
	IssueToken(ctx context.Context, email, password string) (*domain.Token, error)

	// VerifyToken validates an access token and returns its principal.
	VerifyToken(ctx context.Context, accessToken string) (*domain.Principal, error)
}

// tokenUseCase issues tokens for users that pass a credential check.
type tokenUseCase struct {
	users        userUseCase.UseCase
	tokenService authService.TokenService
}

// NewTokenUseCase creates a new TokenUseCase.
func NewTokenUseCase(users userUseCase.UseCase, tokenService authService.TokenService) TokenUseCase {
	return &tokenUseCase{
		users:        users,
		tokenService: tokenService,
	}
}

// IssueToken checks the credentials and returns a signed access token.
func (uc *tokenUseCase) IssueToken(ctx context.Context, email, password string) (*domain.Token, error) {
	user, err := uc.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return uc.tokenService.Sign(domain.Principal{
		UserID: user.ID,
		Name:   user.Name,
	})
}

// VerifyToken validates an access token and returns its principal.
func (uc *tokenUseCase) VerifyToken(ctx context.Context, accessToken string) (*domain.Principal, error) {
	return uc.tokenService.Verify(accessToken)
}
