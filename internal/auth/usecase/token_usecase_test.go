package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authService "github.com/bakhbk/seckit/internal/auth/service"
	apperrors "github.com/bakhbk/seckit/internal/errors"
	userDomain "github.com/bakhbk/seckit/internal/user/domain"
	userUseCase "github.com/bakhbk/seckit/internal/user/usecase"
)

// MockUserUseCase is a mock implementation of the user UseCase for testing.
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) RegisterUser(
	ctx context.Context,
	input userUseCase.RegisterUserInput,
) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserUseCase) GetUserByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockUserUseCase) ListUsers(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func (m *MockUserUseCase) Authenticate(ctx context.Context, email, password string) (*userDomain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func newTestTokenService(t *testing.T) authService.TokenService {
	t.Helper()

	tokenService, err := authService.NewJWTTokenService("test-signing-secret", time.Hour)
	require.NoError(t, err)
	return tokenService
}

func TestTokenUseCase_IssueToken(t *testing.T) {
	t.Run("issues a token for valid credentials", func(t *testing.T) {
		users := &MockUserUseCase{}
		tokenService := newTestTokenService(t)
		useCase := NewTokenUseCase(users, tokenService)

		userID := uuid.Must(uuid.NewV7())
		user := &userDomain.User{
			ID:    userID,
			Name:  "Test User",
			Email: "test@example.com",
		}
		users.On("Authenticate", mock.Anything, "test@example.com", "password123").
			Return(user, nil).Once()

		token, err := useCase.IssueToken(context.Background(), "test@example.com", "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.Equal(t, int64(3600), token.ExpiresIn)
		users.AssertExpectations(t)

		// Verify round trip: the issued token resolves to the same principal.
		principal, err := useCase.VerifyToken(context.Background(), token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, principal.UserID)
		assert.Equal(t, "Test User", principal.Name)
	})

	t.Run("returns error for invalid credentials", func(t *testing.T) {
		users := &MockUserUseCase{}
		tokenService := newTestTokenService(t)
		useCase := NewTokenUseCase(users, tokenService)

		users.On("Authenticate", mock.Anything, "test@example.com", "wrong-password").
			Return(nil, userDomain.ErrInvalidCredentials).Once()

		token, err := useCase.IssueToken(context.Background(), "test@example.com", "wrong-password")

		require.Error(t, err)
		assert.Nil(t, token)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
		users.AssertExpectations(t)
	})
}

func TestTokenUseCase_VerifyToken(t *testing.T) {
	t.Run("rejects a garbage token", func(t *testing.T) {
		users := &MockUserUseCase{}
		tokenService := newTestTokenService(t)
		useCase := NewTokenUseCase(users, tokenService)

		principal, err := useCase.VerifyToken(context.Background(), "not-a-token")

		require.Error(t, err)
		assert.Nil(t, principal)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	})
}
