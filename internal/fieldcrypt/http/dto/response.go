package dto

// EncryptResponse contains the result of a field encryption operation.
type EncryptResponse struct {
	Record string `json:"record"` // Base64-encoded iv || ciphertext || mac
}

// DecryptResponse contains the result of a field decryption operation.
// SECURITY: The Value field contains sensitive data and should be transmitted over HTTPS.
type DecryptResponse struct {
	Value string `json:"value"`
}

// HashResponse contains the deterministic lookup digest for a field value.
type HashResponse struct {
	Digest string `json:"digest"`
}

// VerifyResponse contains the result of a digest verification.
type VerifyResponse struct {
	Match bool `json:"match"`
}
