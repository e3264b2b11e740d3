package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate("secreto-de-prueba", "user-1", "bodeguero", "stock-lotes", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := Parse("secreto-de-prueba", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "bodeguero", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secreto-a", "user-1", "admin", "stock-lotes", 60)
	require.NoError(t, err)

	_, _, err = Parse("secreto-b", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := Generate("secreto", "user-1", "admin", "stock-lotes", -1)
	require.NoError(t, err)

	_, _, err = Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", "user-1", "admin", "stock-lotes", 60)
	assert.Error(t, err)
}
