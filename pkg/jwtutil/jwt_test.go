package jwtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	j := NewJWTUtil(&JWTConfig{SigningKey: "test-key", ExpirationHours: 1})

	token, err := j.GenerateToken("admin@greenfield.edu", 7, 3, "Greenfield Elementary", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@greenfield.edu", claims.Email)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, uint(3), claims.TenantID)
	assert.Equal(t, "Greenfield Elementary", claims.SchoolName)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	issuer := NewJWTUtil(&JWTConfig{SigningKey: "issuer-key", ExpirationHours: 1})
	verifier := NewJWTUtil(&JWTConfig{SigningKey: "other-key", ExpirationHours: 1})

	token, err := issuer.GenerateToken("admin@greenfield.edu", 7, 3, "", "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	j := NewJWTUtil(&JWTConfig{SigningKey: "test-key", ExpirationHours: 1})
	_, err := j.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	j := NewJWTUtil(&JWTConfig{SigningKey: "test-key", ExpirationHours: -1})

	token, err := j.GenerateToken("admin@greenfield.edu", 7, 3, "", "")
	require.NoError(t, err)

	_, err = j.ValidateToken(token)
	assert.Error(t, err)
}
