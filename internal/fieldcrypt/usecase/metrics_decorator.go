package usecase

import (
	"context"
	"time"

	"github.com/bakhbk/seckit/internal/metrics"
)

// fieldUseCaseWithMetrics decorates FieldUseCase with metrics instrumentation.
type fieldUseCaseWithMetrics struct {
	next    FieldUseCase
	metrics metrics.BusinessMetrics
}

// NewFieldUseCaseWithMetrics wraps a FieldUseCase with metrics recording.
func NewFieldUseCaseWithMetrics(useCase FieldUseCase, m metrics.BusinessMetrics) FieldUseCase {
	return &fieldUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// EncryptField records metrics for field encryption operations.
func (f *fieldUseCaseWithMetrics) EncryptField(ctx context.Context, value string) (string, error) {
	start := time.Now()
	record, err := f.next.EncryptField(ctx, value)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "fieldcrypt", "field_encrypt", status)
	f.metrics.RecordDuration(ctx, "fieldcrypt", "field_encrypt", time.Since(start), status)

	return record, err
}

// DecryptField records metrics for field decryption operations.
func (f *fieldUseCaseWithMetrics) DecryptField(ctx context.Context, record string) (string, error) {
	start := time.Now()
	value, err := f.next.DecryptField(ctx, record)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "fieldcrypt", "field_decrypt", status)
	f.metrics.RecordDuration(ctx, "fieldcrypt", "field_decrypt", time.Since(start), status)

	return value, err
}

// HashField records metrics for lookup digest operations.
func (f *fieldUseCaseWithMetrics) HashField(ctx context.Context, value string) (string, error) {
	start := time.Now()
	digest, err := f.next.HashField(ctx, value)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "fieldcrypt", "field_hash", status)
	f.metrics.RecordDuration(ctx, "fieldcrypt", "field_hash", time.Since(start), status)

	return digest, err
}

// VerifyField records metrics for digest verification operations.
func (f *fieldUseCaseWithMetrics) VerifyField(ctx context.Context, value, digest string) (bool, error) {
	start := time.Now()
	match, err := f.next.VerifyField(ctx, value, digest)

	status := "success"
	if err != nil {
		status = "error"
	}

	f.metrics.RecordOperation(ctx, "fieldcrypt", "field_verify", status)
	f.metrics.RecordDuration(ctx, "fieldcrypt", "field_verify", time.Since(start), status)

	return match, err
}
