package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("sweetheart123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "sweetheart123", hash)

	// Hashing the same password twice produces different salts
	hash2, err := HashPassword("sweetheart123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("sweetheart123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "sweetheart123"))
	assert.False(t, VerifyPassword(hash, "wrong-password"))
	assert.False(t, VerifyPassword("not-a-hash", "sweetheart123"))
}
