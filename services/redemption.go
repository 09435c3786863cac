package services

import (
	"errors"
	"fmt"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RedemptionResult reports the post-redemption state plus informational
// stock warnings. Insufficient stock never blocks a redemption; the operator
// is told which items ran short.
type RedemptionResult struct {
	RemainingUnits int                    `json:"remainingUnits"`
	Active         bool                   `json:"active"`
	Record         models.TreatmentRecord `json:"record"`
	StockWarnings  []string               `json:"stockWarnings"`
}

// UseCourse redeems units from a purchased course instance: the remaining
// balance is decremented (clamped at zero), a treatment record is appended,
// and the definition's linked consumables are deducted from stock (also
// clamped at zero). All three writes run in one database transaction; a
// crash mid-workflow can no longer lose the treatment history while keeping
// the decrement.
//
// The units bound is the operator's responsibility: the instance is re-read
// inside the transaction and the balance clamps rather than rejecting, so
// redeeming more than remains simply exhausts the instance.
func (s *ClinicService) UseCourse(actor uuid.UUID, customerID uuid.UUID, instanceID uuid.UUID, unitsToUse int, details TreatmentDetails) (*RedemptionResult, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	if unitsToUse < 1 {
		return nil, fmt.Errorf("units to redeem must be at least 1, got %d", unitsToUse)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var instance models.CustomerCourse
	if err := tx.First(&instance, "id = ? AND customer_id = ?", instanceID, customerID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course instance not found for customer: %w", err)
		}
		return nil, err
	}

	newRemaining := instance.RemainingUnits - unitsToUse
	if newRemaining < 0 {
		newRemaining = 0
	}
	active := newRemaining > 0

	if err := tx.Model(&instance).Updates(map[string]interface{}{
		"remaining_units": newRemaining,
		"active":          active,
	}).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("updating course balance: %w", err)
	}

	record := models.TreatmentRecord{
		CustomerID:    customerID,
		TreatmentName: details.TreatmentName,
		Details:       details.Details,
		DoctorName:    details.DoctorName,
		DoctorFee:     details.DoctorFee,
		UnitsUsed:     unitsToUse,
		Photos:        details.Photos,
	}
	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("recording treatment history: %w", err)
	}

	warnings, err := deductConsumables(tx, instance.CourseID, unitsToUse)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("deducting consumables: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("committing redemption: %w", err)
	}

	s.refreshAfterWrite()
	return &RedemptionResult{
		RemainingUnits: newRemaining,
		Active:         active,
		Record:         record,
		StockWarnings:  warnings,
	}, nil
}

// deductConsumables subtracts quantityUsed x units from every inventory item
// linked to the course definition, flooring each at zero. Returns warnings
// for items that clamped or fell below their reorder level.
func deductConsumables(tx *gorm.DB, courseID uuid.UUID, units int) ([]string, error) {
	var warnings []string

	var def models.CourseDefinition
	if err := tx.First(&def, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Definition deleted after purchase; the instance keeps working,
			// there is just nothing left to deduct.
			logrus.WithField("courseId", courseID).Warn("course definition missing, skipping stock deduction")
			return nil, nil
		}
		return nil, err
	}

	for _, con := range def.Consumables {
		var item models.InventoryItem
		if err := tx.First(&item, "id = ?", con.InventoryItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logrus.WithField("inventoryItemId", con.InventoryItemID).Warn("linked inventory item missing, skipping deduction")
				continue
			}
			return nil, err
		}

		deduct := con.QuantityUsed * units
		newQty := item.Quantity - deduct
		if newQty < 0 {
			warnings = append(warnings, fmt.Sprintf("stock deduction for %q: insufficient stock (needed %d, had %d), floored at zero", item.Name, deduct, item.Quantity))
			newQty = 0
		}
		if err := tx.Model(&item).Update("quantity", newQty).Error; err != nil {
			return nil, err
		}
		if newQty > 0 && newQty < item.MinLevel {
			warnings = append(warnings, fmt.Sprintf("%q is below its reorder level (%d left, min %d)", item.Name, newQty, item.MinLevel))
		}
	}
	return warnings, nil
}
