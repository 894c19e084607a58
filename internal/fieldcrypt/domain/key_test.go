package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bakhbk/seckit/internal/errors"
)

func TestDecodeKey(t *testing.T) {
	t.Run("valid 32-byte key", func(t *testing.T) {
		raw := make([]byte, KeySize)
		for i := range raw {
			raw[i] = byte(i)
		}
		encoded := base64.StdEncoding.EncodeToString(raw)

		key, err := DecodeKey(encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, key)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := DecodeKey("")
		assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := DecodeKey("not-valid-base64!!!")
		assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
	})

	t.Run("wrong length", func(t *testing.T) {
		short := base64.StdEncoding.EncodeToString(make([]byte, 16))
		_, err := DecodeKey(short)
		assert.ErrorIs(t, err, ErrInvalidKeyMaterial)

		long := base64.StdEncoding.EncodeToString(make([]byte, 33))
		_, err = DecodeKey(long)
		assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
	})
}

func TestValidateHashKey(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		assert.NoError(t, ValidateHashKey("this_is_a_hash_key_with_32_chars"))
	})

	t.Run("empty key", func(t *testing.T) {
		assert.ErrorIs(t, ValidateHashKey(""), ErrInvalidKeyMaterial)
	})

	t.Run("too short", func(t *testing.T) {
		assert.ErrorIs(t, ValidateHashKey("short"), ErrInvalidKeyMaterial)
	})
}

func TestValidateSalt(t *testing.T) {
	t.Run("valid salt", func(t *testing.T) {
		assert.NoError(t, ValidateSalt("test_salt_16chars_min"))
	})

	t.Run("empty salt", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSalt(""), ErrInvalidSalt)
	})

	t.Run("blank salt", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSalt("   "), ErrInvalidSalt)
	})

	t.Run("too short", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSalt("fifteen_chars!!"), ErrInvalidSalt)
	})
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)

	// nil is a no-op
	Zero(nil)
}
