package service

// FieldEncryptor defines the interface for reversible, searchable field
// encryption. Implementations must be deterministic: identical plaintext
// always yields an identical record under the same key material.
type FieldEncryptor interface {
	// Encrypt turns a plaintext value into a base64-encoded, tamper-evident record.
	Encrypt(value string) (string, error)

	// Decrypt reverses Encrypt, verifying authenticity before decryption.
	Decrypt(record string) (string, error)
}

// LookupHasher defines the interface for one-way deterministic field digests.
type LookupHasher interface {
	// Hash computes the deterministic lookup digest for value.
	Hash(value string) (string, error)

	// Verify recomputes the digest and compares in constant time.
	// Errors propagate; they are never folded into a false result.
	Verify(value, digest string) (bool, error)
}
