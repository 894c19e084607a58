package domain

import (
	"github.com/bakhbk/seckit/internal/errors"
)

// Field encryption error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for field encryption failures. All errors are mapped to
// appropriate HTTP status codes by the error handling layer.
//
// Classification rules:
//   - Caller mistakes (bad key material, oversized or reserved values, short
//     records) wrap ErrInvalidArgument and are recoverable.
//   - An authentic-looking record that fails MAC verification wraps
//     ErrDataLoss: the data was parseable but cannot be trusted.
//   - Failures inside decoding or the cipher itself (malformed base64, bad
//     PKCS#7 padding) wrap ErrInternal so no parsing detail leaks to callers.
var (
	// ErrInvalidKeyMaterial indicates the symmetric key is absent, not valid
	// base64, or does not decode to exactly 32 bytes. The key is re-validated
	// on every call because it may be supplied from mutable external config.
	ErrInvalidKeyMaterial = errors.Wrap(errors.ErrInvalidArgument, "invalid key material")

	// ErrInvalidSalt indicates the salt is empty or shorter than 16 characters.
	// Salt problems are a construction-time precondition and fail startup
	// rather than surfacing later as a per-call error.
	ErrInvalidSalt = errors.Wrap(errors.ErrInvalidArgument, "salt must be at least 16 characters")

	// ErrValueTooLong indicates the plaintext exceeds 10,000 characters.
	ErrValueTooLong = errors.Wrap(errors.ErrInvalidArgument, "value exceeds maximum length")

	// ErrReservedValue indicates the plaintext equals the reserved empty-string
	// sentinel. Encrypting it would be indistinguishable from encrypting an
	// empty string, so it is rejected to prevent an ambiguity bypass.
	ErrReservedValue = errors.Wrap(errors.ErrInvalidArgument, "value equals reserved sentinel")

	// ErrEmptyValue indicates an empty value was passed to the lookup hasher,
	// which has no empty-string encoding.
	ErrEmptyValue = errors.Wrap(errors.ErrInvalidArgument, "value cannot be empty")

	// ErrRecordTooShort indicates the decoded record is smaller than the
	// minimum of 64 bytes (IV + one block + MAC) and cannot possibly be valid.
	ErrRecordTooShort = errors.Wrap(errors.ErrInvalidArgument, "record too small to contain IV, ciphertext and MAC")

	// ErrAuthenticationFailed indicates MAC verification failed: the record
	// was tampered with or encrypted under a different key. Decryption is
	// never attempted after this error.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrDataLoss, "field authentication failed")

	// ErrMalformedRecord indicates the record is not valid base64.
	ErrMalformedRecord = errors.Wrap(errors.ErrInternal, "malformed encrypted record")

	// ErrDecryptionFailed indicates the cipher step itself failed after
	// successful authentication (block misalignment or invalid padding).
	// The specific cause is not disclosed to prevent information leakage.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInternal, "decryption failed")
)
