// internal/models/order.go
package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShippingAddress is the address snapshot captured at checkout. It is stored
// as a single jsonb column on orders and never updated afterward.
type ShippingAddress struct {
	FullName   string `json:"full_name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

func (a ShippingAddress) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *ShippingAddress) Scan(value interface{}) error {
	if value == nil {
		*a = ShippingAddress{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		bytes = []byte(s)
	}

	return json.Unmarshal(bytes, a)
}

// Order is the durable record produced at checkout. TotalAmount and the
// address snapshot are immutable after creation; only Status changes, and
// only through CanTransitionTo.
type Order struct {
	BaseModel
	UserID          uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(20);default:'pending';not null;index"`
	ShippingAddress ShippingAddress `json:"shipping_address" gorm:"type:jsonb"`
	PaymentRef      string          `json:"payment_ref" gorm:"size:64"`

	User  User        `json:"-" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem is one order line. Price is copied from the product at checkout
// and is never re-read from the live product.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// IsTerminal reports whether no further status changes are allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo enforces the fulfillment state machine:
// pending -> processing -> shipped -> delivered, with cancelled reachable
// from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing
	case OrderStatusProcessing:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// ValidOrderStatus reports whether the given value is one of the five
// recognized statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
