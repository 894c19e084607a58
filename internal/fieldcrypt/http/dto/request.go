// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/bakhbk/seckit/internal/fieldcrypt/domain"
	customValidation "github.com/bakhbk/seckit/internal/validation"
)

// EncryptRequest contains the parameters for encrypting a field value.
// An empty value is a valid input and produces a decryptable record.
type EncryptRequest struct {
	Value string `json:"value"`
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.RuneLength(0, domain.MaxValueLength),
		),
	)
}

// DecryptRequest contains the parameters for decrypting an encrypted record.
type DecryptRequest struct {
	Record string `json:"record"` // Base64-encoded iv || ciphertext || mac
}

// Validate checks if the decrypt request is valid.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Record,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
	)
}

// HashRequest contains the parameters for computing a lookup digest.
type HashRequest struct {
	Value string `json:"value"`
}

// Validate checks if the hash request is valid.
func (r *HashRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, domain.MaxValueLength),
		),
	)
}

// VerifyRequest contains the parameters for verifying a value against a digest.
type VerifyRequest struct {
	Value  string `json:"value"`
	Digest string `json:"digest"` // Base64-encoded HMAC-SHA256 digest
}

// Validate checks if the verify request is valid.
func (r *VerifyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, domain.MaxValueLength),
		),
		validation.Field(&r.Digest,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
