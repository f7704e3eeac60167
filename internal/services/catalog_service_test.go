// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shopora/storefront/internal/apperrors"
	"github.com/shopora/storefront/internal/utils"
)

func seedCatalog(t *testing.T, db *gorm.DB) (electronics, apparel uuid.UUID) {
	t.Helper()

	e := createTestCategory(t, db, "Electronics")
	a := createTestCategory(t, db, "Apparel")
	createTestProduct(t, db, e.ID, "Wireless Headphones", "199.99", 50, true)
	createTestProduct(t, db, e.ID, "USB-C Charger", "34.50", 120, true)
	createTestProduct(t, db, e.ID, "Retired Keyboard", "79.00", 0, false)
	createTestProduct(t, db, a.ID, "Classic T-Shirt", "24.99", 100, true)
	return e.ID, a.ID
}

func TestListProductsHidesInactive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)
	seedCatalog(t, db)

	products, total, err := svc.ListProducts(ProductSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, p := range products {
		assert.NotEqual(t, "Retired Keyboard", p.Name)
	}
}

func TestListProductsByCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)
	_, apparel := seedCatalog(t, db)

	products, total, err := svc.ListProducts(ProductSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 10},
		CategoryID:       &apparel,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "Classic T-Shirt", products[0].Name)
}

func TestListProductsSearchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)
	seedCatalog(t, db)

	products, total, err := svc.ListProducts(ProductSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 10, Search: "WIRELESS"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "Wireless Headphones", products[0].Name)
}

func TestListProductsPriceRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)
	seedCatalog(t, db)

	min := decimal.RequireFromString("20.00")
	max := decimal.RequireFromString("50.00")
	products, total, err := svc.ListProducts(ProductSearchParams{
		PaginationParams: utils.PaginationParams{Page: 1, Limit: 10, Sort: "price", Order: "asc"},
		PriceMin:         &min,
		PriceMax:         &max,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, products, 2)
	assert.Equal(t, "Classic T-Shirt", products[0].Name)
	assert.Equal(t, "USB-C Charger", products[1].Name)
}

func TestGetProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)
	category := createTestCategory(t, db, "Electronics")
	active := createTestProduct(t, db, category.ID, "Wireless Headphones", "199.99", 50, true)
	inactive := createTestProduct(t, db, category.ID, "Retired Keyboard", "79.00", 0, false)

	product, err := svc.GetProduct(active.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", product.Name)
	assert.Equal(t, "Electronics", product.Category.Name)

	_, err = svc.GetProduct(inactive.ID)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.GetProduct(uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListCategoriesAlphabetical(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)
	createTestCategory(t, db, "Home & Kitchen")
	createTestCategory(t, db, "Apparel")
	createTestCategory(t, db, "Electronics")

	categories, err := svc.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Apparel", categories[0].Name)
	assert.Equal(t, "Electronics", categories[1].Name)
	assert.Equal(t, "Home & Kitchen", categories[2].Name)
}
