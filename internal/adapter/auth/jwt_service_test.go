package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinepantry/inventory/internal/domain"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)
	actor := domain.Actor{ID: "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", Role: "admin"}

	token, err := service.GenerateAccessToken(actor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := service.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, actor.ID, resolved.ID)
	assert.Equal(t, actor.Role, resolved.Role)
	assert.True(t, resolved.IsAdmin())
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.GenerateAccessToken(domain.Actor{ID: "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", Role: "admin"})
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := NewJWTService("test-secret", -time.Minute)

	token, err := service.GenerateAccessToken(domain.Actor{ID: "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", Role: "admin"})
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_GarbageToken(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)

	_, err := service.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptPasswordService(t *testing.T) {
	service := NewBcryptPasswordService(4)

	hash, err := service.HashPassword("s3cret-brine")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-brine", hash)

	assert.NoError(t, service.ComparePassword(hash, "s3cret-brine"))
	assert.Error(t, service.ComparePassword(hash, "wrong"))

	_, err = service.HashPassword("")
	assert.Error(t, err)
}
