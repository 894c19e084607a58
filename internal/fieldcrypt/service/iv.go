package service

import (
	"crypto/hmac"
	"crypto/sha256"

	fieldcryptDomain "github.com/bakhbk/seckit/internal/fieldcrypt/domain"
)

// keyedDigest computes HMAC-SHA256(key, value ‖ "|" ‖ salt), the keyed
// pseudorandom function shared by IV derivation and the lookup hasher.
func keyedDigest(key []byte, value, salt string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(value))
	mac.Write([]byte("|"))
	mac.Write([]byte(salt))
	return mac.Sum(nil)
}

// deriveIV derives the 16-byte AES-CBC initialization vector as the first 16
// bytes of HMAC-SHA256(key, value ‖ "|" ‖ salt).
//
// The IV is a function of the plaintext rather than random, so identical
// plaintext always produces identical ciphertext and encrypted columns remain
// usable as exact-match database lookup keys. The cost is that an observer
// can tell which rows share a plaintext. Derivation reuses the encryption
// key; switching to a dedicated derivation key would break every previously
// stored record.
func deriveIV(key []byte, value, salt string) []byte {
	digest := keyedDigest(key, value, salt)
	return digest[:fieldcryptDomain.BlockSize]
}

// computeMAC computes the record MAC: HMAC-SHA256(key, iv ‖ ciphertext).
func computeMAC(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
