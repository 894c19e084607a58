package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordHasher(t *testing.T) {
	t.Run("Success_Bcrypt", func(t *testing.T) {
		hasher, err := NewPasswordHasher(SchemeBcrypt)
		require.NoError(t, err)
		assert.IsType(t, &bcryptHasher{}, hasher)
	})

	t.Run("Success_EmptyDefaultsToBcrypt", func(t *testing.T) {
		hasher, err := NewPasswordHasher("")
		require.NoError(t, err)
		assert.IsType(t, &bcryptHasher{}, hasher)
	})

	t.Run("Success_Argon2id", func(t *testing.T) {
		hasher, err := NewPasswordHasher(SchemeArgon2id)
		require.NoError(t, err)
		assert.IsType(t, &argon2idHasher{}, hasher)
	})

	t.Run("Error_UnknownScheme", func(t *testing.T) {
		hasher, err := NewPasswordHasher("md5")
		assert.Nil(t, hasher)
		assert.Error(t, err)
	})
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	for _, scheme := range []string{SchemeBcrypt, SchemeArgon2id} {
		t.Run(scheme, func(t *testing.T) {
			hasher, err := NewPasswordHasher(scheme)
			require.NoError(t, err)

			hash, err := hasher.Hash("SecurePass123!")
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, "SecurePass123!", hash)

			ok, err := hasher.Verify("SecurePass123!", hash)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = hasher.Verify("WrongPass123!", hash)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher, err := NewPasswordHasher(SchemeBcrypt)
	require.NoError(t, err)

	first, err := hasher.Hash("SecurePass123!")
	require.NoError(t, err)
	second, err := hasher.Hash("SecurePass123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_LongPassword(t *testing.T) {
	hasher, err := NewPasswordHasher(SchemeBcrypt)
	require.NoError(t, err)

	// bcrypt rejects passwords longer than 72 bytes
	_, err = hasher.Hash(strings.Repeat("a", 100))
	assert.Error(t, err)
}
