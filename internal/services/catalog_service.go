// internal/services/catalog_service.go
package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopora/storefront/internal/apperrors"
	"github.com/shopora/storefront/internal/models"
	"github.com/shopora/storefront/internal/utils"
)

// CatalogService is the read-only shopper view of products and categories.
// Inactive products are excluded from every query regardless of filters.
type CatalogService struct {
	db *gorm.DB
}

type ProductSearchParams struct {
	utils.PaginationParams
	CategoryID *uuid.UUID       `json:"category_id,omitempty"`
	PriceMin   *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax   *decimal.Decimal `json:"price_max,omitempty"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).
		Preload("Category").
		Where("is_active = ?", true)

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}

	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewStoreError("count products", err)
	}

	// Listings default to newest first.
	allowedSortFields := []string{"created_at", "name", "price"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, apperrors.NewStoreError("load products", err)
	}

	return products, total, nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product")
		}
		return nil, apperrors.NewStoreError("load product", err)
	}
	return &product, nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, apperrors.NewStoreError("load categories", err)
	}
	return categories, nil
}
