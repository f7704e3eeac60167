// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one (user, product) line in a shopping cart. The composite
// unique index guarantees at most one line per pair; adding the same product
// again goes through the quantity-update path, never a second insert.
type CartItem struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_cart_items_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// Subtotal is the cart-time estimate for this line: quantity times the live
// product price. Orders snapshot their own prices at checkout instead.
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
