// controllers/service.go
package controllers

import (
	"net/http"

	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	Clinic *services.ClinicService
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.NewService
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.Clinic.AddService(actor, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (sc *ServiceController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Clinic.Snapshot().Services)
}

func (sc *ServiceController) GetService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	for _, service := range sc.Clinic.Snapshot().Services {
		if service.ID == id {
			c.JSON(http.StatusOK, service)
			return
		}
	}
	utils.RespondWithError(c, http.StatusNotFound, "Service not found")
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.ServiceUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := sc.Clinic.UpdateService(actor, id, input); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully"})
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := sc.Clinic.DeleteService(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
