package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_And_CheckPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, CheckPassword(hash, "pw123"))
	assert.False(t, CheckPassword(hash, "pw124"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of one password differ.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "same-password"))
	assert.True(t, CheckPassword(second, "same-password"))
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects inputs longer than 72 bytes.
	_, err := HashPassword(strings.Repeat("x", 73))
	require.Error(t, err)
}

func TestCheckPassword_NotAHash(t *testing.T) {
	assert.False(t, CheckPassword("plain-text-not-a-hash", "anything"))
}
