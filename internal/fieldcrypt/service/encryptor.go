// Package service implements the searchable field-encryption protocol:
// deterministic IV derivation, AES-256-CBC encryption with encrypt-then-MAC
// authentication, and the HMAC lookup hasher for one-way searchable fields.
package service

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	fieldcryptDomain "github.com/bakhbk/seckit/internal/fieldcrypt/domain"
)

// DeterministicEncryptor encrypts UTF-8 field values into tamper-evident,
// base64-encoded records while preserving equality between repeated
// encryptions of the same plaintext.
//
// Record layout (before base64): IV(16) ‖ ciphertext(N, N % 16 == 0) ‖ MAC(32).
// The MAC is HMAC-SHA256 over IV ‖ ciphertext and is verified before any
// decryption is attempted (encrypt-then-MAC).
//
// Determinism comes from deriving the IV from (plaintext, salt, key) with a
// keyed hash, so the same value always encrypts to the same record. This
// keeps encrypted columns usable as exact-match database lookup keys at the
// documented cost of revealing which rows share a plaintext; see deriveIV.
//
// Thread safety:
//
//	The encryptor holds only immutable configuration. Every call is a pure
//	function of its inputs, so a single instance is safe for concurrent use
//	from multiple goroutines without coordination.
type DeterministicEncryptor struct {
	secretKey string // base64-encoded 32-byte key, decoded and validated per call
	salt      string
}

// NewDeterministicEncryptor creates an encryptor for the given key material.
//
// secretKey is a base64 string that must decode to exactly 32 bytes; it is
// re-validated on every call because it may be supplied from mutable external
// configuration, so a bad key surfaces as a recoverable per-call error.
//
// salt is validated here, at construction: an empty or short salt is
// deployment misconfiguration and returns a hard error so startup fails fast
// instead of masking the problem as a runtime data error. The salt must stay
// constant across all operations using one key.
func NewDeterministicEncryptor(secretKey, salt string) (*DeterministicEncryptor, error) {
	if err := fieldcryptDomain.ValidateSalt(salt); err != nil {
		return nil, err
	}

	return &DeterministicEncryptor{
		secretKey: secretKey,
		salt:      salt,
	}, nil
}

// Encrypt turns a plaintext value into a base64-encoded encrypted record.
//
// Steps:
//  1. Decode and validate the key (32 bytes after base64).
//  2. Reject values longer than 10,000 characters.
//  3. Reject the reserved empty-string sentinel literal.
//  4. Substitute the sentinel for a true empty string.
//  5. Derive the deterministic IV from (value, salt, key).
//  6. AES-256-CBC encrypt with PKCS#7 padding.
//  7. Append HMAC-SHA256(key, IV ‖ ciphertext).
//  8. Base64-encode IV ‖ ciphertext ‖ MAC.
//
// All validation happens before any output byte is produced; a failing call
// never partially mutates anything.
func (e *DeterministicEncryptor) Encrypt(value string) (string, error) {
	key, err := fieldcryptDomain.DecodeKey(e.secretKey)
	if err != nil {
		return "", err
	}
	defer fieldcryptDomain.Zero(key)

	if utf8.RuneCountInString(value) > fieldcryptDomain.MaxValueLength {
		return "", fieldcryptDomain.ErrValueTooLong
	}

	// An attacker must not be able to craft input that collides with the
	// internal empty-string encoding.
	if value == fieldcryptDomain.EmptyValueSentinel {
		return "", fieldcryptDomain.ErrReservedValue
	}

	if value == "" {
		value = fieldcryptDomain.EmptyValueSentinel
	}

	iv := deriveIV(key, value, e.salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: cipher initialization", fieldcryptDomain.ErrDecryptionFailed)
	}

	padded := pkcs7Pad([]byte(value), fieldcryptDomain.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	record := make([]byte, 0, len(iv)+len(ciphertext)+fieldcryptDomain.MACSize)
	record = append(record, iv...)
	record = append(record, ciphertext...)
	record = append(record, computeMAC(key, record)...)

	return base64.StdEncoding.EncodeToString(record), nil
}

// Decrypt reverses Encrypt. MAC verification is mandatory before decryption
// is attempted; that ordering is the load-bearing security property of the
// whole component.
//
// Error classification:
//   - invalid key material → ErrInvalidKeyMaterial (invalid argument)
//   - undecodable base64 → ErrMalformedRecord (internal; malformed input is
//     reported under the generic internal category so no parsing detail
//     leaks to callers)
//   - decoded length < 64 → ErrRecordTooShort (invalid argument)
//   - MAC mismatch → ErrAuthenticationFailed (data loss); decryption does
//     not proceed
//   - padding or alignment failure → ErrDecryptionFailed (internal)
func (e *DeterministicEncryptor) Decrypt(record string) (string, error) {
	key, err := fieldcryptDomain.DecodeKey(e.secretKey)
	if err != nil {
		return "", err
	}
	defer fieldcryptDomain.Zero(key)

	decoded, err := base64.StdEncoding.DecodeString(record)
	if err != nil {
		return "", fieldcryptDomain.ErrMalformedRecord
	}

	if len(decoded) < fieldcryptDomain.MinRecordSize {
		return "", fieldcryptDomain.ErrRecordTooShort
	}

	macOffset := len(decoded) - fieldcryptDomain.MACSize
	dataToVerify := decoded[:macOffset]
	receivedMAC := decoded[macOffset:]

	computedMAC := computeMAC(key, dataToVerify)
	if !ConstantTimeEqual(string(computedMAC), string(receivedMAC)) {
		return "", fieldcryptDomain.ErrAuthenticationFailed
	}

	iv := dataToVerify[:fieldcryptDomain.BlockSize]
	ciphertext := dataToVerify[fieldcryptDomain.BlockSize:]

	if len(ciphertext)%fieldcryptDomain.BlockSize != 0 {
		return "", fieldcryptDomain.ErrDecryptionFailed
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: cipher initialization", fieldcryptDomain.ErrDecryptionFailed)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, fieldcryptDomain.BlockSize)
	if err != nil {
		return "", err
	}

	value := string(unpadded)
	if value == fieldcryptDomain.EmptyValueSentinel {
		return "", nil
	}

	return value, nil
}
