// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopora/storefront/internal/apperrors"
	"github.com/shopora/storefront/internal/utils"
)

// currentUserID reads the authenticated identity that the auth middleware
// put into the request context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return uuid.Nil, false
	}

	return userID, true
}

// respondServiceError maps the error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	var nf *apperrors.NotFoundError
	var ce *apperrors.ConflictError
	var se *apperrors.StoreError

	switch {
	case errors.Is(err, apperrors.ErrEmptyCart):
		utils.UnprocessableResponse(c, err.Error())
	case errors.As(err, &ve):
		utils.BadRequestResponse(c, ve.Error(), nil)
	case errors.As(err, &nf):
		utils.NotFoundResponse(c, nf.Resource)
	case errors.As(err, &ce):
		utils.ConflictResponse(c, ce.Error())
	case errors.As(err, &se):
		utils.InternalErrorResponse(c, se.Error())
	default:
		utils.BadRequestResponse(c, err.Error(), nil)
	}
}
