package psswd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	hasher := Bcrypt{Cost: bcrypt.MinCost}

	hash, err := hasher.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, hasher.ComparePassword("s3cret-pass", hash))
	assert.False(t, hasher.ComparePassword("wrong", hash))
}
