// internal/services/wishlist_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopora/storefront/internal/apperrors"
	"github.com/shopora/storefront/internal/models"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWishlistService(db)
	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Electronics")
	product := createTestProduct(t, db, category.ID, "Wireless Headphones", "199.99", 50, true)

	first, err := svc.Add(user.ID, product.ID)
	require.NoError(t, err)

	second, err := svc.Add(user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "re-adding returns the existing entry")

	var count int64
	db.Model(&models.WishlistItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestWishlistAddUnknownOrInactiveProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWishlistService(db)
	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Electronics")
	inactive := createTestProduct(t, db, category.ID, "Retired Keyboard", "79.00", 0, false)

	_, err := svc.Add(user.ID, uuid.New())
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Add(user.ID, inactive.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestWishlistRemoveIsNoOpWhenAbsent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWishlistService(db)
	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Electronics")
	product := createTestProduct(t, db, category.ID, "Desk Mat", "22.00", 40, true)

	require.NoError(t, svc.Remove(user.ID, product.ID))

	_, err := svc.Add(user.ID, product.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(user.ID, product.ID))
	require.NoError(t, svc.Remove(user.ID, product.ID))

	present, err := svc.Contains(user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestWishlistContainsAndList(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWishlistService(db)
	user := createTestUser(t, db)
	other := createTestUser(t, db)
	category := createTestCategory(t, db, "Home & Kitchen")
	kettle := createTestProduct(t, db, category.ID, "Electric Kettle", "45.00", 20, true)
	press := createTestProduct(t, db, category.ID, "French Press", "29.95", 10, true)

	_, err := svc.Add(user.ID, kettle.ID)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, press.ID)
	require.NoError(t, err)
	_, err = svc.Add(other.ID, kettle.ID)
	require.NoError(t, err)

	present, err := svc.Contains(user.ID, kettle.ID)
	require.NoError(t, err)
	assert.True(t, present)

	present, err = svc.Contains(other.ID, press.ID)
	require.NoError(t, err)
	assert.False(t, present, "wishlists are per user")

	items, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEqual(t, uuid.Nil, item.Product.ID, "listing joins the product")
	}
}
