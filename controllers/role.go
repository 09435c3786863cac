// controllers/role.go
package controllers

import (
	"net/http"

	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoleController struct {
	Clinic *services.ClinicService
}

func (rc *RoleController) GetRoles(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	roles, err := rc.Clinic.ListUserRoles(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, roles)
}

type grantInput struct {
	UserID string `json:"userId" binding:"required"`
}

func (rc *RoleController) GrantAdmin(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input grantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	userID, err := parseUUIDField(input.UserID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	if err := rc.Clinic.GrantAdmin(actor, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin role granted"})
}
