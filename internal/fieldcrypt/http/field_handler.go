// Package http provides HTTP handlers for field encryption and lookup digest operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bakhbk/seckit/internal/fieldcrypt/http/dto"
	fieldUseCase "github.com/bakhbk/seckit/internal/fieldcrypt/usecase"
	"github.com/bakhbk/seckit/internal/httputil"
	customValidation "github.com/bakhbk/seckit/internal/validation"
)

// FieldHandler handles HTTP requests for field encryption, decryption, and lookup digests.
type FieldHandler struct {
	fieldUseCase fieldUseCase.FieldUseCase // Business logic for field encryption operations
	logger       *slog.Logger              // Structured logger for request handling and error reporting
}

// NewFieldHandler creates a new field handler with required dependencies.
func NewFieldHandler(useCase fieldUseCase.FieldUseCase, logger *slog.Logger) *FieldHandler {
	return &FieldHandler{
		fieldUseCase: useCase,
		logger:       logger,
	}
}

// EncryptHandler encrypts a field value into an authenticated record.
// POST /v1/fields/encrypt
// Returns 200 OK with the base64-encoded record.
func (h *FieldHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	record, err := h.fieldUseCase.EncryptField(c.Request.Context(), req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncryptResponse{Record: record})
}

// DecryptHandler authenticates and decrypts an encrypted record.
// POST /v1/fields/decrypt
// Returns 200 OK with the recovered value. Tampered records map to 422 data_loss.
func (h *FieldHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	value, err := h.fieldUseCase.DecryptField(c.Request.Context(), req.Record)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DecryptResponse{Value: value})
}

// HashHandler computes the deterministic lookup digest for a field value.
// POST /v1/fields/hash
// Returns 200 OK with the base64-encoded digest.
func (h *FieldHandler) HashHandler(c *gin.Context) {
	var req dto.HashRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	digest, err := h.fieldUseCase.HashField(c.Request.Context(), req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.HashResponse{Digest: digest})
}

// VerifyHandler checks a value against a previously computed lookup digest.
// POST /v1/fields/verify
// Returns 200 OK with the comparison result.
func (h *FieldHandler) VerifyHandler(c *gin.Context) {
	var req dto.VerifyRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	match, err := h.fieldUseCase.VerifyField(c.Request.Context(), req.Value, req.Digest)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Match: match})
}
