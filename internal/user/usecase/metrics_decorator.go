package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bakhbk/seckit/internal/metrics"
	"github.com/bakhbk/seckit/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a user UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	u.metrics.RecordOperation(ctx, "user", operation, status)
	u.metrics.RecordDuration(ctx, "user", operation, time.Since(start), status)
}

// RegisterUser records metrics for user registration.
func (u *userUseCaseWithMetrics) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.RegisterUser(ctx, input)
	u.record(ctx, "user_register", start, err)
	return user, err
}

// GetUserByEmail records metrics for email lookups.
func (u *userUseCaseWithMetrics) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetUserByEmail(ctx, email)
	u.record(ctx, "user_get_by_email", start, err)
	return user, err
}

// GetUserByID records metrics for ID lookups.
func (u *userUseCaseWithMetrics) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetUserByID(ctx, id)
	u.record(ctx, "user_get_by_id", start, err)
	return user, err
}

// ListUsers records metrics for paginated user listings.
func (u *userUseCaseWithMetrics) ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.ListUsers(ctx, offset, limit)
	u.record(ctx, "user_list", start, err)
	return users, err
}

// Authenticate records metrics for credential checks.
func (u *userUseCaseWithMetrics) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Authenticate(ctx, email, password)
	u.record(ctx, "user_authenticate", start, err)
	return user, err
}
