// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	SetJWTSecret("test-secret")

	userID := uuid.New()
	token, err := GenerateJWT(userID, "shopper@example.com", "customer", 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "shopper@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "storefront", claims.Issuer)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(uuid.New(), "shopper@example.com", "customer", 1)
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	_, err = ValidateJWT("not.a.token")
	assert.Error(t, err)

	SetJWTSecret("rotated-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err, "token signed with an old secret no longer validates")
	SetJWTSecret("test-secret")
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	userID := uuid.New()
	token, err := GenerateRefreshToken(userID, 24)
	require.NoError(t, err)

	subject, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), subject)
}
