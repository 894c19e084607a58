package usecase

import (
	"context"
	"time"

	"github.com/bakhbk/seckit/internal/auth/domain"
	"github.com/bakhbk/seckit/internal/metrics"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// IssueToken records metrics for token issuance.
func (t *tokenUseCaseWithMetrics) IssueToken(ctx context.Context, email, password string) (*domain.Token, error) {
	start := time.Now()
	token, err := t.next.IssueToken(ctx, email, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", "token_issue", status)
	t.metrics.RecordDuration(ctx, "auth", "token_issue", time.Since(start), status)

	return token, err
}

// VerifyToken records metrics for token verification.
func (t *tokenUseCaseWithMetrics) VerifyToken(ctx context.Context, accessToken string) (*domain.Principal, error) {
	start := time.Now()
	principal, err := t.next.VerifyToken(ctx, accessToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "auth", "token_verify", status)
	t.metrics.RecordDuration(ctx, "auth", "token_verify", time.Since(start), status)

	return principal, err
}
