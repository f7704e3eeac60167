// internal/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	BaseModel
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"`
	Role         UserRole       `json:"role" gorm:"type:varchar(20);default:'customer';not null"`
	Status       UserStatus     `json:"status" gorm:"type:varchar(20);default:'active'"`
	LastLoginAt  *time.Time     `json:"last_login_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Profile       *UserProfile   `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	CartItems     []CartItem     `json:"cart_items,omitempty" gorm:"foreignKey:UserID"`
	WishlistItems []WishlistItem `json:"wishlist_items,omitempty" gorm:"foreignKey:UserID"`
	Orders        []Order        `json:"orders,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// UserProfile holds the shopper-editable contact details, one row per user.
// It is created lazily the first time the profile is requested.
type UserProfile struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	FullName string    `json:"full_name" gorm:"size:255"`
	Phone    string    `json:"phone" gorm:"size:50"`
	Address  string    `json:"address" gorm:"type:text"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
