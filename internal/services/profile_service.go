// internal/services/profile_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopora/storefront/internal/apperrors"
	"github.com/shopora/storefront/internal/models"
	"github.com/shopora/storefront/internal/utils"
)

type ProfileService struct {
	db *gorm.DB
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name,omitempty" validate:"omitempty,min=2,max=255"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,phone"`
	Address  string `json:"address,omitempty"`
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile returns the user's profile, creating an empty one on first
// access.
func (s *ProfileService) GetProfile(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{UserID: userID}
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, apperrors.NewStoreError("create profile", err)
		}
		return &profile, nil
	}
	if err != nil {
		return nil, apperrors.NewStoreError("load profile", err)
	}
	return &profile, nil
}

// UpdateProfile applies the non-empty fields. Only the owning identity can
// reach this through the router; the user_id filter repeats the check.
func (s *ProfileService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*models.UserProfile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}

	if len(updates) > 0 {
		if err := s.db.Model(profile).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
			return nil, apperrors.NewStoreError("update profile", err)
		}
	}

	s.db.Where("user_id = ?", userID).First(profile)
	return profile, nil
}
