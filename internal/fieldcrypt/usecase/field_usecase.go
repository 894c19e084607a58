// Package usecase implements the field encryption business logic, exposing
// the deterministic encryptor and lookup hasher to transport layers.
package usecase

import (
	"context"

	fieldcryptService "github.com/bakhbk/seckit/internal/fieldcrypt/service"
)

// fieldUseCase delegates to the deterministic encryptor and lookup hasher.
type fieldUseCase struct {
	encryptor fieldcryptService.FieldEncryptor
	hasher    fieldcryptService.LookupHasher
}

// NewFieldUseCase creates a FieldUseCase backed by the given encryptor and hasher.
func NewFieldUseCase(
	encryptor fieldcryptService.FieldEncryptor,
	hasher fieldcryptService.LookupHasher,
) FieldUseCase {
	return &fieldUseCase{
		encryptor: encryptor,
		hasher:    hasher,
	}
}

// EncryptField encrypts a single field value.
func (u *fieldUseCase) EncryptField(_ context.Context, value string) (string, error) {
	return u.encryptor.Encrypt(value)
}

// DecryptField decrypts a single encrypted record.
func (u *fieldUseCase) DecryptField(_ context.Context, record string) (string, error) {
	return u.encryptor.Decrypt(record)
}

// HashField computes a lookup digest for a field value.
func (u *fieldUseCase) HashField(_ context.Context, value string) (string, error) {
	return u.hasher.Hash(value)
}

// VerifyField compares a value against a previously computed digest.
func (u *fieldUseCase) VerifyField(_ context.Context, value, digest string) (bool, error) {
	return u.hasher.Verify(value, digest)
}
