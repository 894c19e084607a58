package domain

// Byte-level layout of an encrypted field record (before base64 encoding):
//
//	offset 0      .. 16   : IV (raw AES-CBC initialization vector)
//	offset 16     .. 16+N : ciphertext (N bytes, multiple of 16, PKCS#7 padded)
//	offset 16+N   .. +32  : HMAC-SHA256(key, IV ‖ ciphertext)
//
// The whole buffer is base64-encoded (standard alphabet, padded) for storage
// as text. The MAC is always the final 32 bytes and covers everything that
// precedes it.
const (
	// KeySize is the required symmetric key size in bytes (AES-256).
	KeySize = 32

	// BlockSize is the AES block size. The IV has the same length and the
	// ciphertext length is always a positive multiple of it.
	BlockSize = 16

	// MACSize is the HMAC-SHA256 output size appended to every record.
	MACSize = 32

	// MinRecordSize is the smallest valid decoded record:
	// IV (16) + one ciphertext block (16) + MAC (32).
	MinRecordSize = BlockSize + BlockSize + MACSize

	// MaxValueLength is the maximum plaintext length in characters accepted
	// by the encryptor and the lookup hasher. Longer values are rejected as
	// a denial-of-service guard.
	MaxValueLength = 10000

	// MinSaltLength is the minimum salt length enforced at construction time.
	// The salt must stay constant for the lifetime of a key: changing it
	// invalidates every previously produced record and digest.
	MinSaltLength = 16

	// MinHashKeyLength is the minimum length of the lookup hasher secret key.
	MinHashKeyLength = 32
)

// EmptyValueSentinel is the reserved marker substituted for a true empty
// string before encryption so that zero-length input traverses the block
// cipher uniformly with non-empty input. Decryption substitutes it back.
//
// The marker is delimited with STX/ETX control characters so it cannot occur
// in ordinary user data; plaintext literally equal to the marker is rejected
// at encrypt time to prevent a collision with the internal encoding.
const EmptyValueSentinel = "\x02__EMPTY_VALUE__\x03"
