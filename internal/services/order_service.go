// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopora/storefront/internal/apperrors"
	"github.com/shopora/storefront/internal/database"
	"github.com/shopora/storefront/internal/models"
	"github.com/shopora/storefront/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type CreateOrderRequest struct {
	FullName   string `json:"full_name" validate:"required"`
	Phone      string `json:"phone" validate:"required,phone"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder converts the user's current cart into a durable order: one
// order row, one line per cart line with the price snapshotted now, stock
// decremented, and the cart emptied. All of it runs in a single database
// transaction, so a failure at any step leaves no partial records behind.
func (s *OrderService) CreateOrder(userID uuid.UUID, req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	paymentRef, err := utils.GeneratePaymentRef()
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment reference: %w", err)
	}

	var order *models.Order

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").
			Where("user_id = ?", userID).
			Order("created_at asc").
			Find(&items).Error; err != nil {
			return apperrors.NewStoreError("load cart", err)
		}

		if len(items) == 0 {
			return apperrors.ErrEmptyCart
		}

		for i := range items {
			if !items[i].Product.IsActive {
				return apperrors.NewValidationError(items[i].Product.Name, "is no longer available")
			}
		}

		// The authoritative total, computed once from the cart as read at the
		// start of the operation.
		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))
		for i := range items {
			line := items[i]
			total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			orderItems = append(orderItems, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Product.Price,
			})
		}

		order = &models.Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
			PaymentRef:  paymentRef,
			ShippingAddress: models.ShippingAddress{
				FullName:   req.FullName,
				Phone:      req.Phone,
				Street:     req.Street,
				City:       req.City,
				State:      req.State,
				PostalCode: req.PostalCode,
				Country:    req.Country,
			},
		}

		if err := tx.Create(order).Error; err != nil {
			return apperrors.NewStoreError("create order", err)
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return apperrors.NewStoreError("create order items", err)
		}

		// Stock enforcement lives in the decrement itself: the guarded UPDATE
		// only succeeds while enough stock remains, so a competing checkout
		// that got here first makes this one fail and roll back rather than
		// drive stock_quantity negative.
		for i := range items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", items[i].ProductID, items[i].Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", items[i].Quantity))
			if res.Error != nil {
				return apperrors.NewStoreError("decrement stock", res.Error)
			}
			if res.RowsAffected == 0 {
				return apperrors.NewValidationError(items[i].Product.Name,
					fmt.Sprintf("insufficient stock: %d available", items[i].Product.StockQuantity))
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return apperrors.NewStoreError("clear cart", err)
		}

		// The cart read inside this transaction already carries the products;
		// hand the lines back without a post-commit reload.
		for i := range orderItems {
			orderItems[i].Product = items[i].Product
		}
		order.Items = orderItems

		return nil
	})

	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.TotalAmount.String(),
		"items":    len(order.Items),
	}).Info("Order created")

	return order, nil
}

// GetOrder returns the user's own order with its lines. Ownership is
// re-checked here even though the auth layer already scopes requests.
func (s *OrderService) GetOrder(userID uuid.UUID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").Preload("Items.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order")
		}
		return nil, apperrors.NewStoreError("load order", err)
	}
	return &order, nil
}

func (s *OrderService) ListOrders(userID uuid.UUID, params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewStoreError("count orders", err)
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("created_at desc").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&orders).Error; err != nil {
		return nil, 0, apperrors.NewStoreError("load orders", err)
	}

	return orders, total, nil
}

// UpdateStatus applies an administrative fulfillment transition. The order's
// total and line items are never touched.
func (s *OrderService) UpdateStatus(orderID uuid.UUID, next models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(next) {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", next))
	}

	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("order")
		}
		return nil, apperrors.NewStoreError("load order", err)
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, apperrors.NewValidationError("status",
			fmt.Sprintf("cannot transition from %s to %s", order.Status, next))
	}

	if err := s.db.Model(&order).Update("status", next).Error; err != nil {
		return nil, apperrors.NewStoreError("update order status", err)
	}

	return &order, nil
}
