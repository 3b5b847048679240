package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mestore/mestore-backend/pkg/config"
)

// Lighter parameters than production defaults keep the test fast.
var testParams = config.PasswordConfig{
	ArgonMemoryKB:    8,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     8,
	ArgonKeyLen:      16,
}

func TestHashAndVerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", testParams)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	ok, err := VerifyPassword("s3cret-pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong-pass", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	_, err := HashPassword("", testParams)
	assert.Error(t, err)
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	for _, encoded := range []string{"", "plaintext", "$bcrypt$whatever", "$argon2id$v=19$m=8$short"} {
		_, err := VerifyPassword("anything", encoded)
		assert.ErrorIs(t, err, ErrInvalidHash, "encoded %q", encoded)
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("same-password", testParams)
	require.NoError(t, err)
	second, err := HashPassword("same-password", testParams)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
