package commands

import (
	"bytes"
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerateFieldKeys(t *testing.T) {
	var out bytes.Buffer

	err := RunGenerateFieldKeys(&out)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "FIELD_ENCRYPTION_KEY=")
	assert.Contains(t, output, "FIELD_HASH_KEY=")
	assert.Contains(t, output, "FIELD_SALT=")

	// The encryption key must decode to exactly 32 bytes
	re := regexp.MustCompile(`FIELD_ENCRYPTION_KEY="([^"]+)"`)
	matches := re.FindStringSubmatch(output)
	require.Len(t, matches, 2)

	key, err := base64.StdEncoding.DecodeString(matches[1])
	require.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestRunGenerateFieldKeys_UniquePerInvocation(t *testing.T) {
	var first, second bytes.Buffer

	require.NoError(t, RunGenerateFieldKeys(&first))
	require.NoError(t, RunGenerateFieldKeys(&second))

	assert.NotEqual(t, first.String(), second.String())
}
