// controllers/inventory.go
package controllers

import (
	"net/http"

	"clinicpro-backend/models"
	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	Clinic *services.ClinicService
}

func (ic *InventoryController) CreateItem(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.NewInventoryItem
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := ic.Clinic.AddInventoryItem(actor, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (ic *InventoryController) GetItems(c *gin.Context) {
	c.JSON(http.StatusOK, ic.Clinic.Snapshot().Inventory)
}

// GetLowStockItems lists items under their reorder threshold, used by the
// POS confirmation screen as an informational warning.
func (ic *InventoryController) GetLowStockItems(c *gin.Context) {
	low := []models.InventoryItem{}
	for _, item := range ic.Clinic.Snapshot().Inventory {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	c.JSON(http.StatusOK, low)
}

func (ic *InventoryController) UpdateItem(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.InventoryItemUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ic.Clinic.UpdateInventoryItem(actor, id, input); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item updated successfully"})
}

func (ic *InventoryController) DeleteItem(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ic.Clinic.DeleteInventoryItem(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}

type stockAdjustmentInput struct {
	// Pointer so a zero delta still counts as present; any integer is a
	// valid adjustment.
	Delta *int `json:"delta" binding:"required"`
}

// AdjustStock applies a manual signed stock adjustment, clamped at zero
func (ic *InventoryController) AdjustStock(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input stockAdjustmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := ic.Clinic.UpdateStock(actor, id, *input.Delta)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
