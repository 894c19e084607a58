package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/bakhbk/seckit/internal/auth/domain"
	"github.com/bakhbk/seckit/internal/auth/http/dto"
	userDomain "github.com/bakhbk/seckit/internal/user/domain"
)

func setupTokenRouter(mockTokenUC *mockTokenUseCase) *gin.Engine {
	handler := NewTokenHandler(mockTokenUC, createTestLogger())
	router := gin.New()
	router.POST("/v1/auth/token", handler.IssueTokenHandler)
	return router
}

func postToken(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestTokenHandler_IssueTokenHandler(t *testing.T) {
	t.Run("returns token for valid credentials", func(t *testing.T) {
		mockTokenUC := &mockTokenUseCase{}
		router := setupTokenRouter(mockTokenUC)

		expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
		token := &authDomain.Token{
			AccessToken: "signed-token",
			TokenType:   "Bearer",
			ExpiresIn:   3600,
			ExpiresAt:   expiresAt,
		}
		mockTokenUC.On("IssueToken", mock.Anything, "user@example.com", "Str0ng!Pass").
			Return(token, nil).Once()

		w := postToken(t, router, dto.IssueTokenRequest{
			Email:    "user@example.com",
			Password: "Str0ng!Pass",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		assert.True(t, expiresAt.Equal(resp.ExpiresAt))
		mockTokenUC.AssertExpectations(t)
	})

	t.Run("returns 400 for invalid JSON", func(t *testing.T) {
		mockTokenUC := &mockTokenUseCase{}
		router := setupTokenRouter(mockTokenUC)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/token",
			bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockTokenUC.AssertNotCalled(t, "IssueToken")
	})

	t.Run("returns 422 for missing email", func(t *testing.T) {
		mockTokenUC := &mockTokenUseCase{}
		router := setupTokenRouter(mockTokenUC)

		w := postToken(t, router, dto.IssueTokenRequest{Password: "Str0ng!Pass"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockTokenUC.AssertNotCalled(t, "IssueToken")
	})

	t.Run("returns 422 for malformed email", func(t *testing.T) {
		mockTokenUC := &mockTokenUseCase{}
		router := setupTokenRouter(mockTokenUC)

		w := postToken(t, router, dto.IssueTokenRequest{
			Email:    "not-an-email",
			Password: "Str0ng!Pass",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockTokenUC.AssertNotCalled(t, "IssueToken")
	})

	t.Run("returns 401 for invalid credentials", func(t *testing.T) {
		mockTokenUC := &mockTokenUseCase{}
		router := setupTokenRouter(mockTokenUC)

		mockTokenUC.On("IssueToken", mock.Anything, "user@example.com", "wrong-password").
			Return(nil, userDomain.ErrInvalidCredentials).Once()

		w := postToken(t, router, dto.IssueTokenRequest{
			Email:    "user@example.com",
			Password: "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockTokenUC.AssertExpectations(t)
	})
}
