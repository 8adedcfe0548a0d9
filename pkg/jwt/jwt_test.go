package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Gestion-api/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "gestion-pro-test"
	testExpHours  = 96
)

func TestJWT_GenerateAndParse_Company(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testCompanyID, "empresa@acme.co", pkgjwt.UserTypeCompany, "", testIssuer, testExpHours)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testCompanyID, claims.UserID)
	assert.Equal(t, "empresa@acme.co", claims.Email)
	assert.Equal(t, pkgjwt.UserTypeCompany, claims.UserType)
	assert.Empty(t, claims.CompanyID, "para company el claim company_id va vacío")
}

func TestJWT_GenerateAndParse_Employee(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "empleado@acme.co", pkgjwt.UserTypeEmployee, testCompanyID, testIssuer, testExpHours)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, pkgjwt.UserTypeEmployee, claims.UserType)
	assert.Equal(t, testCompanyID, claims.CompanyID, "employee debe llevar la empresa propietaria")
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Expiración -1 hora (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, "x@x.co", pkgjwt.UserTypeEmployee, testCompanyID, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "x@x.co", pkgjwt.UserTypeCompany, "", testIssuer, testExpHours)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "x@x.co", pkgjwt.UserTypeCompany, "", testIssuer, testExpHours)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "cualquier.token.aqui")
	assert.Error(t, err)
}
