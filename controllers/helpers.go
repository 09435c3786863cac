package controllers

import (
	"errors"
	"net/http"

	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// currentUser extracts the authenticated identity set by the auth middleware.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

// parseIDParam parses the :id path parameter as a UUID.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDField parses a UUID carried in a JSON body field.
func parseUUIDField(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

// respondServiceError maps a service error onto an HTTP status. Store
// rejections are surfaced verbatim so the operator sees the underlying
// constraint message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		utils.RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrEmptyCart):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrMissingTables):
		utils.RespondWithError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case services.IsForeignKeyViolation(err):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
