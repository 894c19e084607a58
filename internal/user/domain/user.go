// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/bakhbk/seckit/internal/errors"
)

// User represents a user in the system.
// Email and Phone hold plaintext values and are never persisted directly;
// the repository stores EmailEncrypted, EmailDigest, and PhoneEncrypted instead.
type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	EmailEncrypted string
	EmailDigest    string
	Phone          string
	PhoneEncrypted string
	Password       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidEmail indicates the email format is invalid.
	ErrInvalidEmail = errors.Wrap(errors.ErrInvalidArgument, "invalid email format")

	// ErrInvalidPassword indicates the password doesn't meet requirements.
	ErrInvalidPassword = errors.Wrap(errors.ErrInvalidArgument, "invalid password")

	// ErrInvalidCredentials indicates the email or password doesn't match a user.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")
)
