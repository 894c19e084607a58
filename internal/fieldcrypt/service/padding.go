package service

import (
	"bytes"
	"fmt"

	fieldcryptDomain "github.com/bakhbk/seckit/internal/fieldcrypt/domain"
)

// pkcs7Pad appends PKCS#7 padding to src so that its length is a multiple of
// blockSize. If len(src) is already aligned, a full extra block is appended so
// the padding can always be unambiguously removed.
func pkcs7Pad(src []byte, blockSize int) []byte {
	padding := blockSize - (len(src) % blockSize)
	return append(src, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// pkcs7Unpad removes PKCS#7 padding from src.
//
// This runs only after MAC verification succeeds, so it is not exposed to
// padding-oracle attacks. The checks still reject pathological inputs instead
// of returning wrong data.
func pkcs7Unpad(src []byte, blockSize int) ([]byte, error) {
	length := len(src)
	if length == 0 || length%blockSize != 0 {
		return nil, fmt.Errorf(
			"%w: length %d is not a positive multiple of %d",
			fieldcryptDomain.ErrDecryptionFailed,
			length,
			blockSize,
		)
	}

	padding := int(src[length-1])
	if padding == 0 || padding > blockSize || padding > length {
		return nil, fmt.Errorf(
			"%w: invalid padding byte %d",
			fieldcryptDomain.ErrDecryptionFailed,
			padding,
		)
	}

	for i := length - padding; i < length; i++ {
		if src[i] != byte(padding) {
			return nil, fmt.Errorf(
				"%w: malformed padding",
				fieldcryptDomain.ErrDecryptionFailed,
			)
		}
	}

	return src[:length-padding], nil
}
