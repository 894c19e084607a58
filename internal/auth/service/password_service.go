package service

import (
	"fmt"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/bakhbk/seckit/internal/errors"
	userUseCase "github.com/bakhbk/seckit/internal/user/usecase"
)

// Password hashing schemes selectable via configuration.
const (
	SchemeBcrypt   = "bcrypt"
	SchemeArgon2id = "argon2id"
)

// bcryptHasher hashes passwords with bcrypt at the default cost.
type bcryptHasher struct {
	cost int
}

// Hash hashes a plain text password using bcrypt.
func (b *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// Verify compares a plain text password against a bcrypt hash.
// A mismatch is not an error; only unexpected failures are returned.
func (b *bcryptHasher) Verify(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return false, nil
		}
		return false, apperrors.Wrap(err, "failed to verify password")
	}
	return true, nil
}

// argon2idHasher hashes passwords with Argon2id using the interactive policy.
type argon2idHasher struct {
	hasher *pwdhash.PasswordHasher
}

// Hash hashes a plain text password using Argon2id.
func (a *argon2idHasher) Hash(password string) (string, error) {
	hash, err := a.hasher.Hash([]byte(password))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

// Verify compares a plain text password against an Argon2id hash.
func (a *argon2idHasher) Verify(password, encodedHash string) (bool, error) {
	ok, err := a.hasher.Verify([]byte(password), encodedHash)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to verify password")
	}
	return ok, nil
}

// NewPasswordHasher creates a password hasher for the configured scheme.
func NewPasswordHasher(scheme string) (userUseCase.PasswordHasher, error) {
	switch scheme {
	case SchemeBcrypt, "":
		return &bcryptHasher{cost: bcrypt.DefaultCost}, nil
	case SchemeArgon2id:
		hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to create password hasher")
		}
		return &argon2idHasher{hasher: hasher}, nil
	default:
		return nil, fmt.Errorf("unknown password hash scheme: %q", scheme)
	}
}
