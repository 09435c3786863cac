package controllers

import (
	"net/http"

	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Clinic *services.ClinicService
}

// CreateCustomer creates a new customer record
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.NewCustomer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	customer, err := cc.Clinic.AddCustomer(actor, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers serves all customers from the cached snapshot, children
// included.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Clinic.Snapshot().Customers)
}

// GetCustomer serves a single customer from the cached snapshot
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	for _, customer := range cc.Clinic.Snapshot().Customers {
		if customer.ID == id {
			c.JSON(http.StatusOK, customer)
			return
		}
	}
	utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
}

// UpdateCustomer applies a partial update
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.CustomerUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if err := cc.Clinic.UpdateCustomer(actor, id, input); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully"})
}

// DeleteCustomer removes a customer; rejected with the store's constraint
// message while dependent records exist
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := cc.Clinic.DeleteCustomer(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

type treatmentInput struct {
	UnitsUsed int `json:"unitsUsed" binding:"min=0"`
	services.TreatmentDetails
}

// AddTreatmentRecord logs a manual treatment entry for a customer
func (cc *CustomerController) AddTreatmentRecord(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input treatmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	record, err := cc.Clinic.AddTreatmentRecord(actor, id, input.UnitsUsed, input.TreatmentDetails)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

type useCourseInput struct {
	CourseInstanceID string `json:"courseInstanceId" binding:"required"`
	UnitsToUse       int    `json:"unitsToUse" binding:"required,min=1"`
	services.TreatmentDetails
}

// UseCourse redeems units from one of the customer's course instances
func (cc *CustomerController) UseCourse(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input useCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	instanceID, err := parseUUIDField(input.CourseInstanceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid course instance ID format")
		return
	}

	result, err := cc.Clinic.UseCourse(actor, id, instanceID, input.UnitsToUse, input.TreatmentDetails)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
