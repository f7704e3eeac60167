// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopora/storefront/internal/models"
	"github.com/shopora/storefront/internal/services"
	"github.com/shopora/storefront/internal/utils"
)

// AdminHandler is the administrative surface for order fulfillment. Status
// transitions happen only here; the checkout workflow only ever produces
// pending orders.
type AdminHandler struct {
	orderService *services.OrderService
}

func NewAdminHandler(orderService *services.OrderService) *AdminHandler {
	return &AdminHandler{orderService: orderService}
}

// PUT /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Status required", nil)
		return
	}

	order, err := h.orderService.UpdateStatus(orderID, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"order": order})
}
