package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("café-secret-123")
	require.NoError(t, err)
	assert.True(t, IsArgon2Hash(hash))

	ok, err := VerifyPassword("café-secret-123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("mauvais-mot-de-passe", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	first, err := HashPassword("même-mot-de-passe")
	require.NoError(t, err)
	second, err := HashPassword("même-mot-de-passe")
	require.NoError(t, err)

	// Sel aléatoire : deux hachages du même mot de passe diffèrent
	assert.NotEqual(t, first, second)
}

func TestIsBcryptHash(t *testing.T) {
	assert.True(t, IsBcryptHash("$2a$10$abcdefghijklmnopqrstuv"))
	assert.True(t, IsBcryptHash("$2b$12$abcdefghijklmnopqrstuv"))
	assert.False(t, IsBcryptHash("$argon2id$v=19$..."))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("peu importe", "pas-un-hash")
	assert.Error(t, err)
}

func TestOrderStatusMessage(t *testing.T) {
	msg := OrderStatusMessage("abc-123", "preparing")
	assert.True(t, strings.Contains(msg, "abc-123"))
}
