package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/config"
	"github.com/jonathan/talenthub/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-for-unit-tests",
		ExpirationHours: 1,
	})
}

func TestJWTRoundTrip(t *testing.T) {
	service := testJWTService()
	accountID := uuid.New()

	token, err := service.GenerateToken(accountID, types.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, types.RoleEmployee, claims.Role)
	assert.Equal(t, accountID, claims.GetAccountID())
	assert.Equal(t, "employee", claims.GetRole())
}

func TestValidateToken_EmptyString(t *testing.T) {
	_, err := testJWTService().ValidateToken("")
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := testJWTService().ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken(uuid.New(), types.RoleApplicant)
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestAsTokenValidator(t *testing.T) {
	service := testJWTService()
	accountID := uuid.New()

	token, err := service.GenerateToken(accountID, types.RoleSysAdmin)
	require.NoError(t, err)

	validator := service.AsTokenValidator()
	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.GetAccountID())
}
