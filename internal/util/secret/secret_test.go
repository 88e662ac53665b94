package secret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword_LengthAndAlphabet(t *testing.T) {
	t.Parallel()
	pw, err := GeneratePassword(DefaultPasswordLength)
	require.NoError(t, err)
	assert.Len(t, pw, DefaultPasswordLength)

	for _, r := range pw {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestGeneratePassword_Unique(t *testing.T) {
	t.Parallel()
	a, err := GeneratePassword(24)
	require.NoError(t, err)
	b, err := GeneratePassword(24)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGeneratePassword_InvalidLength(t *testing.T) {
	t.Parallel()
	_, err := GeneratePassword(0)
	assert.Error(t, err)
	_, err = GeneratePassword(-5)
	assert.Error(t, err)
}
