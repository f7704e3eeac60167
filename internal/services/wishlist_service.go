// internal/services/wishlist_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopora/storefront/internal/apperrors"
	"github.com/shopora/storefront/internal/database"
	"github.com/shopora/storefront/internal/models"
)

type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

// Add saves the product for the user. Adding an already-saved product is
// idempotent and returns the existing entry; only a racing duplicate insert
// that trips the store's unique constraint surfaces as ConflictError.
func (s *WishlistService) Add(userID uuid.UUID, productID uuid.UUID) (*models.WishlistItem, error) {
	var product models.Product
	if err := s.db.Where("id = ? AND is_active = ?", productID, true).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product")
		}
		return nil, apperrors.NewStoreError("load product", err)
	}

	var item models.WishlistItem
	err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err == nil {
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStoreError("load wishlist item", err)
	}

	item = models.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.db.Create(&item).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("wishlist item")
		}
		return nil, apperrors.NewStoreError("create wishlist item", err)
	}

	return &item, nil
}

// Remove deletes the saved pair; removing a non-existent pair is a no-op.
func (s *WishlistService) Remove(userID uuid.UUID, productID uuid.UUID) error {
	if err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error; err != nil {
		return apperrors.NewStoreError("delete wishlist item", err)
	}
	return nil
}

func (s *WishlistService) Contains(userID uuid.UUID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, apperrors.NewStoreError("check wishlist item", err)
	}
	return count > 0, nil
}

func (s *WishlistService) List(userID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := s.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, apperrors.NewStoreError("load wishlist", err)
	}
	return items, nil
}
