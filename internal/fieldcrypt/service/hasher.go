package service

import (
	"encoding/base64"
	"unicode/utf8"

	fieldcryptDomain "github.com/bakhbk/seckit/internal/fieldcrypt/domain"
)

// HMACLookupHasher is the one-way sibling of the encryptor, for fields that
// must support exact-match search but never need to be decrypted.
//
// The digest is base64(HMAC-SHA256(key, value ‖ "|" ‖ salt)): the same
// (value, salt, key) triple always yields the same digest, and the digest
// reveals nothing about the value beyond equality.
//
// Like the encryptor, the hasher holds only immutable configuration and is
// safe for concurrent use.
type HMACLookupHasher struct {
	secretKey string // plain string of at least 32 characters, validated per call
	salt      string
}

// NewHMACLookupHasher creates a lookup hasher for the given key material.
// The salt is validated here as a fatal construction-time precondition; the
// key is re-validated on every call.
func NewHMACLookupHasher(secretKey, salt string) (*HMACLookupHasher, error) {
	if err := fieldcryptDomain.ValidateSalt(salt); err != nil {
		return nil, err
	}

	return &HMACLookupHasher{
		secretKey: secretKey,
		salt:      salt,
	}, nil
}

// Hash computes the deterministic lookup digest for value.
// Rejects empty values, values over 10,000 characters, and invalid key
// material, with the same error taxonomy as the encryptor.
func (h *HMACLookupHasher) Hash(value string) (string, error) {
	if err := fieldcryptDomain.ValidateHashKey(h.secretKey); err != nil {
		return "", err
	}

	if value == "" {
		return "", fieldcryptDomain.ErrEmptyValue
	}

	if utf8.RuneCountInString(value) > fieldcryptDomain.MaxValueLength {
		return "", fieldcryptDomain.ErrValueTooLong
	}

	digest := keyedDigest([]byte(h.secretKey), value, h.salt)
	return base64.StdEncoding.EncodeToString(digest), nil
}

// Verify recomputes the digest for value and compares it with the supplied
// digest in constant time.
//
// Upstream hashing errors propagate instead of being swallowed into a false
// result, so callers can distinguish "did not match" from "could not be
// computed".
func (h *HMACLookupHasher) Verify(value, digest string) (bool, error) {
	computed, err := h.Hash(value)
	if err != nil {
		return false, err
	}

	return ConstantTimeEqual(computed, digest), nil
}
