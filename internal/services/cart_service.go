// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopora/storefront/internal/apperrors"
	"github.com/shopora/storefront/internal/database"
	"github.com/shopora/storefront/internal/models"
	"github.com/shopora/storefront/internal/utils"
)

type CartService struct {
	db *gorm.DB
}

type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartSummary is the cart as the shopper sees it: the lines with their live
// products, plus aggregate totals. TotalAmount uses current prices and is an
// estimate; the authoritative total is computed at checkout.
type CartSummary struct {
	Items       []models.CartItem `json:"items"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	TotalItems  int               `json:"total_items"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// AddToCart merges into an existing (user, product) line when one exists,
// otherwise inserts a new line. There is never more than one line per pair.
func (s *CartService) AddToCart(userID uuid.UUID, req *AddToCartRequest) (*models.CartItem, error) {
	if req.Quantity < 1 {
		return nil, apperrors.NewValidationError("quantity", "must be at least 1")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	var product models.Product
	if err := s.db.Where("id = ? AND is_active = ?", req.ProductID, true).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product")
		}
		return nil, apperrors.NewStoreError("load product", err)
	}

	var item models.CartItem
	err := s.db.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{UserID: userID, ProductID: req.ProductID, Quantity: req.Quantity}
		if err := s.db.Create(&item).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return nil, apperrors.NewConflictError("cart item")
			}
			return nil, apperrors.NewStoreError("create cart item", err)
		}
	case err != nil:
		return nil, apperrors.NewStoreError("load cart item", err)
	default:
		if err := s.db.Model(&item).Update("quantity", item.Quantity+req.Quantity).Error; err != nil {
			return nil, apperrors.NewStoreError("update cart item", err)
		}
	}

	s.db.Preload("Product").First(&item, item.ID)
	return &item, nil
}

// UpdateQuantity sets the line's quantity; a non-positive quantity is
// equivalent to removal.
func (s *CartService) UpdateQuantity(userID uuid.UUID, lineID uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, s.Remove(userID, lineID)
	}

	var item models.CartItem
	if err := s.db.Where("id = ? AND user_id = ?", lineID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("cart item")
		}
		return nil, apperrors.NewStoreError("load cart item", err)
	}

	if err := s.db.Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, apperrors.NewStoreError("update cart item", err)
	}

	s.db.Preload("Product").First(&item, item.ID)
	return &item, nil
}

// Remove deletes the line. Removing an already-absent line is a no-op.
func (s *CartService) Remove(userID uuid.UUID, lineID uuid.UUID) error {
	if err := s.db.Where("id = ? AND user_id = ?", lineID, userID).
		Delete(&models.CartItem{}).Error; err != nil {
		return apperrors.NewStoreError("delete cart item", err)
	}
	return nil
}

// Clear deletes every line for the user.
func (s *CartService) Clear(userID uuid.UUID) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return apperrors.NewStoreError("clear cart", err)
	}
	return nil
}

func (s *CartService) GetCart(userID uuid.UUID) (*CartSummary, error) {
	var items []models.CartItem
	if err := s.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, apperrors.NewStoreError("load cart", err)
	}

	return &CartSummary{
		Items:       items,
		TotalAmount: CartTotalAmount(items),
		TotalItems:  CartTotalItems(items),
	}, nil
}

// CartTotalAmount sums quantity times the currently joined product price.
func CartTotalAmount(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}
	return total
}

// CartTotalItems sums quantities across lines.
func CartTotalItems(items []models.CartItem) int {
	count := 0
	for i := range items {
		count += items[i].Quantity
	}
	return count
}

// validationError converts a validator.ValidationErrors into the first
// field-level ValidationError of the taxonomy.
func validationError(err error) error {
	fields := utils.GetValidationErrors(err)
	if len(fields) == 0 {
		return apperrors.NewValidationError("", fmt.Sprintf("invalid input: %v", err))
	}
	return apperrors.NewValidationError(fields[0].Field, fields[0].Message)
}
