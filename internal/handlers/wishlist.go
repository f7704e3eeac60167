// internal/handlers/wishlist.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopora/storefront/internal/services"
	"github.com/shopora/storefront/internal/utils"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.wishlistService.List(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"items": items})
}

// PUT /wishlist/:productID
func (h *WishlistHandler) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	item, err := h.wishlistService.Add(userID, productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"item": item})
}

// DELETE /wishlist/:productID
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.wishlistService.Remove(userID, productID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"removed": true})
}

// GET /wishlist/:productID
func (h *WishlistHandler) ContainsItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	contains, err := h.wishlistService.Contains(userID, productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"saved": contains})
}
