package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	fieldDomain "github.com/bakhbk/seckit/internal/fieldcrypt/domain"
)

// RunGenerateFieldKeys generates the secrets needed for field encryption.
// Produces a 32-byte encryption key, a hash key for lookup digests and an
// application-wide salt, all base64-encoded and printed as environment variables.
//
// Output format:
//   - FIELD_ENCRYPTION_KEY="<base64-encoded-32-byte-key>"
//   - FIELD_HASH_KEY="<base64-encoded-32-byte-key>"
//   - FIELD_SALT="<base64-encoded-24-byte-salt>"
//
// The salt is not secret but must stay stable: changing it makes existing
// records undecryptable and existing lookup digests unmatchable.
func RunGenerateFieldKeys(w io.Writer) error {
	encryptionKey := make([]byte, fieldDomain.KeySize)
	if _, err := rand.Read(encryptionKey); err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}

	hashKey := make([]byte, fieldDomain.MinHashKeyLength)
	if _, err := rand.Read(hashKey); err != nil {
		return fmt.Errorf("failed to generate hash key: %w", err)
	}

	salt := make([]byte, 24)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	fmt.Fprintln(w, "# Field Encryption Configuration")
	fmt.Fprintln(w, "# Copy these environment variables to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "FIELD_ENCRYPTION_KEY=%q\n", base64.StdEncoding.EncodeToString(encryptionKey))
	fmt.Fprintf(w, "FIELD_HASH_KEY=%q\n", base64.StdEncoding.EncodeToString(hashKey))
	fmt.Fprintf(w, "FIELD_SALT=%q\n", base64.StdEncoding.EncodeToString(salt))

	// Zero out the key material from memory
	fieldDomain.Zero(encryptionKey)
	fieldDomain.Zero(hashKey)

	return nil
}
