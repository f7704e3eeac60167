// internal/models/catalog.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	BaseModel
	Name        string         `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description string         `json:"description" gorm:"type:text"`
	ImageURL    string         `json:"image_url" gorm:"size:500"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

type Product struct {
	BaseModel
	Name          string          `json:"name" gorm:"size:255;not null"`
	Description   string          `json:"description" gorm:"type:text"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID    uuid.UUID       `json:"category_id" gorm:"type:uuid;not null;index"`
	ImageURL      string          `json:"image_url" gorm:"size:500"`
	StockQuantity int             `json:"stock_quantity" gorm:"not null;default:0"`
	IsActive      bool            `json:"is_active" gorm:"not null;default:true;index"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`

	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
