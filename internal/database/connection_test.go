// internal/database/connection_test.go
package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopora/storefront/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.CartItem{}))
	return db
}

func TestIsUniqueViolationTranslatedDuplicate(t *testing.T) {
	db := openTestDB(t)

	userID, productID := uuid.New(), uuid.New()
	require.NoError(t, db.Create(&models.CartItem{
		UserID: userID, ProductID: productID, Quantity: 1,
	}).Error)

	err := db.Create(&models.CartItem{
		UserID: userID, ProductID: productID, Quantity: 2,
	}).Error
	require.Error(t, err, "the (user_id, product_id) unique index must reject a second line")
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(err))
}

func TestIsUniqueViolationPostgresCode(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db := openTestDB(t)

	category := models.Category{Name: "Electronics"}
	require.NoError(t, db.Create(&category).Error)

	sentinel := errors.New("abort")
	err := WithTransaction(db, func(tx *gorm.DB) error {
		if err := tx.Create(&models.Category{Name: "Apparel"}).Error; err != nil {
			return err
		}
		return sentinel
	})
	assert.True(t, errors.Is(err, sentinel))

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
