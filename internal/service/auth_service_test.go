package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	hash, err := HashPIN("4321", bcrypt.MinCost)
	require.NoError(t, err)

	auth := NewAuthService(hash, "Dokandar")

	_, err = auth.Login("0000")
	assert.ErrorIs(t, err, ErrInvalidPIN)

	resp, err := auth.Login("4321")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Dokandar", resp.Operator.Name)

	validated, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Operator.ID, validated.Operator.ID)
}

func TestAuthRejectsTokenFromOtherOperator(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	hash, err := HashPIN("4321", bcrypt.MinCost)
	require.NoError(t, err)

	first := NewAuthService(hash, "Dokandar")
	resp, err := first.Login("4321")
	require.NoError(t, err)

	second := NewAuthService(hash, "Dokandar")
	_, err = second.ValidateToken(resp.Token)
	assert.Error(t, err)
}

func TestAuthWithoutPIN(t *testing.T) {
	auth := NewAuthService("", "Dokandar")
	_, err := auth.Login("1234")
	assert.ErrorIs(t, err, ErrPINNotConfigured)
}
