// controllers/pos.go
package controllers

import (
	"net/http"

	"clinicpro-backend/models"
	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type POSController struct {
	Clinic *services.ClinicService
}

type checkoutInput struct {
	CustomerID    string              `json:"customerId" binding:"required"`
	Items         []services.SaleLine `json:"items" binding:"required"`
	PaymentMethod string              `json:"paymentMethod" binding:"required,oneof=Cash 'Credit Card' Transfer"`
}

// Checkout processes a POS sale: one transaction row plus one course
// instance per unit of every course line, all-or-nothing.
func (pc *POSController) Checkout(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input checkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customerID, err := parseUUIDField(input.CustomerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	transaction, err := pc.Clinic.ProcessSale(actor, customerID, input.Items, input.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

func (pc *POSController) GetTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, pc.Clinic.Snapshot().Transactions)
}

type correctionInput struct {
	Items []models.TransactionItem `json:"items" binding:"required,min=1"`
}

// CorrectTransaction rewrites the item snapshot of a recorded sale and
// recomputes the total. Used to fix mispriced entries after the fact.
func (pc *POSController) CorrectTransaction(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input correctionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	transaction, err := pc.Clinic.UpdateTransactionItems(actor, id, input.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}
