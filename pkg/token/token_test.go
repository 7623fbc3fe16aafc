package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cse-motors/pkg/token"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "cse-motors-test"
)

func testClaims() token.AccountClaims {
	return token.AccountClaims{
		AccountID:   42,
		FirstName:   "Basil",
		LastName:    "Vasquez",
		Email:       "basil@example.com",
		AccountType: "Employee",
	}
}

func TestIssueAndParse_RoundTrip(t *testing.T) {
	tok, err := token.Issue(testSecret, testIssuer, testClaims(), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := token.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, 42, claims.AccountID)
	assert.Equal(t, "Basil", claims.FirstName)
	assert.Equal(t, "Vasquez", claims.LastName)
	assert.Equal(t, "basil@example.com", claims.Email)
	assert.Equal(t, "Employee", claims.AccountType)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti único")
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := token.Issue(testSecret, testIssuer, testClaims(), -time.Minute)
	require.NoError(t, err)

	_, err = token.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := token.Issue(testSecret, testIssuer, testClaims(), time.Hour)
	require.NoError(t, err)

	_, err = token.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenMalformado_RetornaError(t *testing.T) {
	_, err := token.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestIssue_SecretVacio_RetornaError(t *testing.T) {
	_, err := token.Issue("", testIssuer, testClaims(), time.Hour)
	assert.Error(t, err)
}
