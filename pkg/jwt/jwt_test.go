package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	id := uuid.New()

	token, err := GenerateToken(id, "Dokandar")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.OperatorID)
	assert.Equal(t, "Dokandar", claims.Name)
}

func TestValidateRejectsOtherSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "one")
	token, err := GenerateToken(uuid.New(), "Dokandar")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "two")
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateEmpty(t *testing.T) {
	_, err := ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
