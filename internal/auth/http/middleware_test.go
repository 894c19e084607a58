// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/bakhbk/seckit/internal/auth/domain"
)

// mockTokenUseCase is a mock implementation of TokenUseCase for testing.
type mockTokenUseCase struct {
	mock.Mock
}

func (m *mockTokenUseCase) IssueToken(
	ctx context.Context,
	email, password string,
) (*authDomain.Token, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Token), args.Error(1)
}

func (m *mockTokenUseCase) VerifyToken(ctx context.Context, accessToken string) (*authDomain.Principal, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// createTestLogger creates a test logger that discards output.
func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// principalEcho returns a handler that writes the authenticated principal's name.
func principalEcho(t *testing.T) gin.HandlerFunc {
	t.Helper()

	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"name": principal.Name})
	}
}

func TestAuthenticationMiddleware_Success(t *testing.T) {
	mockTokenUC := &mockTokenUseCase{}
	logger := createTestLogger()

	userID := uuid.Must(uuid.NewV7())
	principal := &authDomain.Principal{UserID: userID, Name: "Test User"}
	mockTokenUC.On("VerifyToken", mock.Anything, "valid-token").Return(principal, nil).Once()

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockTokenUC, "", logger))
	router.GET("/protected", principalEcho(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Test User")
	mockTokenUC.AssertExpectations(t)
}

func TestAuthenticationMiddleware_CaseInsensitiveBearer(t *testing.T) {
	mockTokenUC := &mockTokenUseCase{}
	logger := createTestLogger()

	principal := &authDomain.Principal{UserID: uuid.Must(uuid.NewV7()), Name: "Test User"}
	mockTokenUC.On("VerifyToken", mock.Anything, "valid-token").Return(principal, nil).Once()

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockTokenUC, "", logger))
	router.GET("/protected", principalEcho(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "bearer valid-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockTokenUC.AssertExpectations(t)
}

func TestAuthenticationMiddleware_MissingHeader(t *testing.T) {
	mockTokenUC := &mockTokenUseCase{}
	logger := createTestLogger()

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockTokenUC, "", logger))
	router.GET("/protected", principalEcho(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockTokenUC.AssertNotCalled(t, "VerifyToken")
}

func TestAuthenticationMiddleware_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "missing token", header: "Bearer "},
		{name: "no scheme", header: "some-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokenUC := &mockTokenUseCase{}
			logger := createTestLogger()

			router := gin.New()
			router.Use(AuthenticationMiddleware(mockTokenUC, "", logger))
			router.GET("/protected", principalEcho(t))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tt.header)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			mockTokenUC.AssertNotCalled(t, "VerifyToken")
		})
	}
}

func TestAuthenticationMiddleware_InvalidToken(t *testing.T) {
	mockTokenUC := &mockTokenUseCase{}
	logger := createTestLogger()

	mockTokenUC.On("VerifyToken", mock.Anything, "bad-token").
		Return(nil, authDomain.ErrInvalidToken).Once()

	router := gin.New()
	router.Use(AuthenticationMiddleware(mockTokenUC, "", logger))
	router.GET("/protected", principalEcho(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockTokenUC.AssertExpectations(t)
}

func TestAuthenticationMiddleware_DevBypassToken(t *testing.T) {
	t.Run("accepts the configured bypass token", func(t *testing.T) {
		mockTokenUC := &mockTokenUseCase{}
		logger := createTestLogger()

		router := gin.New()
		router.Use(AuthenticationMiddleware(mockTokenUC, "dev-secret", logger))
		router.GET("/protected", principalEcho(t))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer dev-secret")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "dev-bypass")
		mockTokenUC.AssertNotCalled(t, "VerifyToken")
	})

	t.Run("falls through to token verification on mismatch", func(t *testing.T) {
		mockTokenUC := &mockTokenUseCase{}
		logger := createTestLogger()

		mockTokenUC.On("VerifyToken", mock.Anything, "other-token").
			Return(nil, authDomain.ErrInvalidToken).Once()

		router := gin.New()
		router.Use(AuthenticationMiddleware(mockTokenUC, "dev-secret", logger))
		router.GET("/protected", principalEcho(t))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer other-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockTokenUC.AssertExpectations(t)
	})

	t.Run("ignores bypass when not configured", func(t *testing.T) {
		mockTokenUC := &mockTokenUseCase{}
		logger := createTestLogger()

		mockTokenUC.On("VerifyToken", mock.Anything, "dev-secret").
			Return(nil, authDomain.ErrInvalidToken).Once()

		router := gin.New()
		router.Use(AuthenticationMiddleware(mockTokenUC, "", logger))
		router.GET("/protected", principalEcho(t))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer dev-secret")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockTokenUC.AssertExpectations(t)
	})
}
