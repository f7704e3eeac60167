// internal/services/profile_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/storefront/internal/apperrors"
	"github.com/shopora/storefront/internal/models"
)

func TestGetProfileCreatesOnFirstAccess(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Empty(t, profile.FullName)

	again, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID, "second read returns the same row")

	var count int64
	db.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateProfileAppliesNonEmptyFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	profile, err := svc.UpdateProfile(user.ID, &UpdateProfileRequest{
		FullName: "Jordan Reyes",
		Phone:    "+1 555 010 4477",
		Address:  "14 Harbor Lane, Portvale",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jordan Reyes", profile.FullName)
	assert.Equal(t, "+1 555 010 4477", profile.Phone)

	// An empty field leaves the stored value alone.
	profile, err = svc.UpdateProfile(user.ID, &UpdateProfileRequest{Phone: "+1 555 010 9999"})
	require.NoError(t, err)
	assert.Equal(t, "Jordan Reyes", profile.FullName)
	assert.Equal(t, "+1 555 010 9999", profile.Phone)
}

func TestUpdateProfileValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db)

	_, err := svc.UpdateProfile(user.ID, &UpdateProfileRequest{Phone: "nope"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.UpdateProfile(user.ID, &UpdateProfileRequest{FullName: "J"})
	assert.True(t, apperrors.IsValidation(err))
}
