// Package domain defines the field encryption data model: key material
// validation, the encrypted record layout, and the reserved empty-string
// sentinel.
package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeKey decodes a base64-encoded symmetric key and validates its length.
//
// The key must decode to exactly 32 bytes (AES-256). An absent or wrong-length
// key is a hard input error and is never silently padded or truncated. Callers
// own the returned bytes and should Zero them when done.
func DecodeKey(secretKey string) ([]byte, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKeyMaterial)
	}

	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: key is not valid base64", ErrInvalidKeyMaterial)
	}

	if len(key) != KeySize {
		Zero(key)
		return nil, fmt.Errorf(
			"%w: key must decode to %d bytes, got %d",
			ErrInvalidKeyMaterial,
			KeySize,
			len(key),
		)
	}

	return key, nil
}

// ValidateHashKey checks the lookup hasher secret key: a plain string of at
// least 32 characters. Unlike the encryption key it is used as raw bytes and
// is not base64-decoded.
func ValidateHashKey(secretKey string) error {
	if secretKey == "" {
		return fmt.Errorf("%w: key is empty", ErrInvalidKeyMaterial)
	}
	if len(secretKey) < MinHashKeyLength {
		return fmt.Errorf(
			"%w: key must be at least %d characters, got %d",
			ErrInvalidKeyMaterial,
			MinHashKeyLength,
			len(secretKey),
		)
	}
	return nil
}

// ValidateSalt enforces the construction-time salt invariant: non-blank and
// at least 16 characters. A failing salt is deployment misconfiguration and
// should abort startup.
func ValidateSalt(salt string) error {
	if strings.TrimSpace(salt) == "" {
		return fmt.Errorf("%w: salt is empty", ErrInvalidSalt)
	}
	if len(salt) < MinSaltLength {
		return fmt.Errorf("%w: got %d characters", ErrInvalidSalt, len(salt))
	}
	return nil
}
