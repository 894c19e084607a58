package usecase

import (
	"context"
)

// FieldUseCase defines the interface for field encryption business operations.
// All operations are pure functions of their inputs and the configured key
// material; context is accepted for instrumentation and cancellation symmetry
// with the rest of the application, not because any operation blocks.
type FieldUseCase interface {
	// EncryptField turns a plaintext value into a base64-encoded encrypted record.
	EncryptField(ctx context.Context, value string) (string, error)

	// DecryptField reverses EncryptField, verifying authenticity first.
	DecryptField(ctx context.Context, record string) (string, error)

	// HashField computes the one-way deterministic lookup digest for a value.
	HashField(ctx context.Context, value string) (string, error)

	// VerifyField recomputes the digest for value and compares it with digest
	// in constant time. Hashing errors propagate; they never fold into false.
	VerifyField(ctx context.Context, value, digest string) (bool, error)
}
