package usecase

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fieldcryptDomain "github.com/bakhbk/seckit/internal/fieldcrypt/domain"
	fieldcryptService "github.com/bakhbk/seckit/internal/fieldcrypt/service"
)

func newTestUseCase(t *testing.T) FieldUseCase {
	t.Helper()

	raw := make([]byte, fieldcryptDomain.KeySize)
	for i := range raw {
		raw[i] = byte(i)
	}
	secretKey := base64.StdEncoding.EncodeToString(raw)

	encryptor, err := fieldcryptService.NewDeterministicEncryptor(secretKey, "test_salt_16chars_min")
	require.NoError(t, err)

	hasher, err := fieldcryptService.NewHMACLookupHasher(
		"this_is_a_hash_key_with_32_chars",
		"test_salt_16chars_min",
	)
	require.NoError(t, err)

	return NewFieldUseCase(encryptor, hasher)
}

func TestFieldUseCase_EncryptDecrypt(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	record, err := uc.EncryptField(ctx, "test@example.com")
	require.NoError(t, err)

	value, err := uc.DecryptField(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", value)
}

func TestFieldUseCase_HashVerify(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	digest, err := uc.HashField(ctx, "a@b.com")
	require.NoError(t, err)

	match, err := uc.VerifyField(ctx, "a@b.com", digest)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = uc.VerifyField(ctx, "c@d.com", digest)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestFieldUseCase_ErrorsPropagate(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.EncryptField(ctx, fieldcryptDomain.EmptyValueSentinel)
	assert.ErrorIs(t, err, fieldcryptDomain.ErrReservedValue)

	_, err = uc.DecryptField(ctx, "%%%")
	assert.ErrorIs(t, err, fieldcryptDomain.ErrMalformedRecord)

	_, err = uc.HashField(ctx, "")
	assert.ErrorIs(t, err, fieldcryptDomain.ErrEmptyValue)
}
