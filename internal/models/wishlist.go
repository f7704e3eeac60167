// internal/models/wishlist.go
package models

import (
	"github.com/google/uuid"
)

// WishlistItem links a user to a saved product.
type WishlistItem struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_wishlist_items_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_items_user_product"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
