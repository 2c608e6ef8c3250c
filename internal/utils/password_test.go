package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "secret"))
	assert.False(t, VerifyPassword(hash, "Secret"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestHashPassword_NeverEqualsPlaintext(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	h1, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	// Each hash embeds its own random salt, so two hashes of the same
	// password must differ while both still verifying.
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword(h1, "secret"))
	assert.True(t, VerifyPassword(h2, "secret"))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "secret"))
	assert.False(t, VerifyPassword("", "secret"))
}
