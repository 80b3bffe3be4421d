package service_test

import (
	"testing"

	"github.com/dcsil/k.ai/internal/auth/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := service.HashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, service.VerifyPassword("password123", hash))
	assert.False(t, service.VerifyPassword("password124", hash))
}

func TestVerifyPassword_BadHash(t *testing.T) {
	assert.False(t, service.VerifyPassword("password123", "not-a-bcrypt-hash"))
	assert.False(t, service.VerifyPassword("password123", ""))
}
