// internal/services/service_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopora/storefront/internal/config"
	"github.com/shopora/storefront/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		Email:  fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		Role:   models.UserRoleCustomer,
		Status: models.UserStatusActive,
	}
	require.NoError(t, user.SetPassword("Sup3r$ecret"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, categoryID uuid.UUID, name, price string, stock int, active bool) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:          name,
		Description:   name + " description",
		Price:         decimal.RequireFromString(price),
		CategoryID:    categoryID,
		StockQuantity: stock,
		IsActive:      active,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func shippingRequest() *CreateOrderRequest {
	return &CreateOrderRequest{
		FullName:   "Jordan Reyes",
		Phone:      "+1 555 010 4477",
		Street:     "14 Harbor Lane",
		City:       "Portvale",
		State:      "OR",
		PostalCode: "97201",
		Country:    "US",
	}
}
