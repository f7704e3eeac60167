// internal/database/connection.go
package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopora/storefront/internal/config"
	"github.com/shopora/storefront/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
	if cfg.LogLevel != "silent" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Catalog indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_categories_name ON categories(name)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",

		// Audit indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_user_action ON audit_logs(user_id, action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",

		// Full-text search index for catalog substring queries
		"CREATE INDEX IF NOT EXISTS idx_products_search ON products USING GIN(to_tsvector('english', name || ' ' || description))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	// Create default admin user
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.User{
			Email:  "admin@storefront.local",
			Role:   models.UserRoleAdmin,
			Status: models.UserStatusActive,
		}

		if err := admin.SetPassword("admin123!@#"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	}

	// Create starter categories with a few demo products each
	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	if categoryCount > 0 {
		log.Println("Initial data seeding completed")
		return nil
	}

	seed := []struct {
		category models.Category
		products []models.Product
	}{
		{
			category: models.Category{Name: "Electronics", Description: "Audio, computing and accessories"},
			products: []models.Product{
				{Name: "Wireless Headphones", Description: "Over-ear wireless headphones with noise cancelling", Price: decimal.RequireFromString("199.99"), StockQuantity: 40, IsActive: true},
				{Name: "USB-C Charger", Description: "65W fast charger", Price: decimal.RequireFromString("34.50"), StockQuantity: 120, IsActive: true},
			},
		},
		{
			category: models.Category{Name: "Apparel", Description: "Clothing and accessories"},
			products: []models.Product{
				{Name: "Classic T-Shirt", Description: "100% cotton crew neck", Price: decimal.RequireFromString("24.99"), StockQuantity: 200, IsActive: true},
				{Name: "Canvas Tote", Description: "Reusable canvas shopping bag", Price: decimal.RequireFromString("12.00"), StockQuantity: 80, IsActive: true},
			},
		},
		{
			category: models.Category{Name: "Home & Kitchen", Description: "Everyday household goods"},
			products: []models.Product{
				{Name: "French Press", Description: "1L borosilicate glass french press", Price: decimal.RequireFromString("29.95"), StockQuantity: 35, IsActive: true},
			},
		},
	}

	for _, entry := range seed {
		category := entry.category
		if err := db.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", category.Name, err)
		}
		for _, product := range entry.products {
			product.CategoryID = category.ID
			if err := db.Create(&product).Error; err != nil {
				log.Printf("Warning: Failed to seed product %s: %v", product.Name, err)
			}
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// IsUniqueViolation reports whether err is a uniqueness-constraint failure,
// either as translated by GORM or as a raw Postgres 23505.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
