// AngelaMos | 2026
// security_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.Contains(t, hash, "$argon2id$")
	assert.NotContains(t, hash, "correct horse battery staple")

	// a second hash of the same password uses a fresh salt
	other, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)

	valid, err := VerifyPassword("s3cret-password", hash)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"truncated", "$argon2id$v=19$m=65536"},
		{"bad base64 salt", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := VerifyPassword("anything", tt.hash)
			assert.Error(t, err)
			assert.False(t, valid)
		})
	}
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("real-password")
	require.NoError(t, err)

	t.Run("valid password against stored hash", func(t *testing.T) {
		valid, err := VerifyPasswordTimingSafe("real-password", &hash)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("wrong password against stored hash", func(t *testing.T) {
		valid, err := VerifyPasswordTimingSafe("wrong-password", &hash)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("nil hash always fails", func(t *testing.T) {
		valid, err := VerifyPasswordTimingSafe("real-password", nil)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("empty hash always fails", func(t *testing.T) {
		empty := ""
		valid, err := VerifyPasswordTimingSafe("real-password", &empty)
		require.NoError(t, err)
		assert.False(t, valid)
	})
}
