// controllers/appointment.go
package controllers

import (
	"net/http"

	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	Clinic *services.ClinicService
}

func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.NewAppointment
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	apt, err := ac.Clinic.AddAppointment(actor, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, apt)
}

func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, ac.Clinic.Snapshot().Appointments)
}

type statusInput struct {
	Status string `json:"status" binding:"required,oneof=Pending Confirmed Completed Cancelled"`
}

func (ac *AppointmentController) UpdateStatus(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ac.Clinic.UpdateAppointmentStatus(actor, id, input.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment status updated"})
}

func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ac.Clinic.DeleteAppointment(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
