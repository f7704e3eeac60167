// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/storefront/internal/apperrors"
	"github.com/shopora/storefront/internal/models"
	"github.com/shopora/storefront/internal/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&RegisterRequest{
		Email:    "shopper@example.com",
		Password: "Sup3r$ecret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleCustomer, resp.User.Role)
	assert.Equal(t, models.UserStatusActive, resp.User.Status)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.UserID)
	assert.Equal(t, "customer", claims.Role)

	login, err := svc.Login(&LoginRequest{
		Email:    "shopper@example.com",
		Password: "Sup3r$ecret",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
	assert.NotNil(t, login.User.LastLoginAt)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&RegisterRequest{Email: "shopper@example.com", Password: "Sup3r$ecret"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterRequest{Email: "shopper@example.com", Password: "An0ther$ecret"})
	assert.True(t, apperrors.IsConflict(err))
}

func TestRegisterWeakPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&RegisterRequest{Email: "shopper@example.com", Password: "password"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestLoginFailures(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&RegisterRequest{Email: "shopper@example.com", Password: "Sup3r$ecret"})
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Email: "shopper@example.com", Password: "wrong"})
	assert.EqualError(t, err, "invalid email or password")

	_, err = svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "Sup3r$ecret"})
	assert.EqualError(t, err, "invalid email or password")

	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "shopper@example.com").
		Update("status", models.UserStatusSuspended).Error)

	_, err = svc.Login(&LoginRequest{Email: "shopper@example.com", Password: "Sup3r$ecret"})
	assert.EqualError(t, err, "account is suspended")
}

func TestRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&RegisterRequest{Email: "shopper@example.com", Password: "Sup3r$ecret"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken("not-a-token")
	assert.Error(t, err)
}
