package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(4) // low cost keeps the test fast

	hash, err := hasher.Hash("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, hasher.Verify("password123", hash))
	assert.False(t, hasher.Verify("wrong-password", hash))
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewPasswordHasher(4)

	first, err := hasher.Hash("password123")
	assert.NoError(t, err)
	second, err := hasher.Hash("password123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_MalformedHashVerifiesFalse(t *testing.T) {
	hasher := NewPasswordHasher(4)

	assert.False(t, hasher.Verify("password123", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("password123", ""))
}

func TestNewPasswordHasher_CostOutOfRangeFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("password123")
	assert.NoError(t, err)
	assert.True(t, hasher.Verify("password123", hash))
}
