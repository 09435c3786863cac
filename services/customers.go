package services

import (
	"errors"
	"fmt"
	"time"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewCustomer is the payload for creating a customer record.
type NewCustomer struct {
	Name      string     `json:"name" binding:"required"`
	Phone     string     `json:"phone" binding:"required"`
	Email     string     `json:"email"`
	BirthDate *time.Time `json:"birthDate"`
	LineID    string     `json:"lineId"`
	Address   string     `json:"address"`
	Notes     string     `json:"notes"`
}

// CustomerUpdate carries partial field updates; nil fields are left as-is.
type CustomerUpdate struct {
	Name      *string    `json:"name"`
	Phone     *string    `json:"phone"`
	Email     *string    `json:"email"`
	BirthDate *time.Time `json:"birthDate"`
	LineID    *string    `json:"lineId"`
	Address   *string    `json:"address"`
	Notes     *string    `json:"notes"`
}

func (s *ClinicService) AddCustomer(actor uuid.UUID, in NewCustomer) (*models.Customer, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	customer := models.Customer{
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		BirthDate: in.BirthDate,
		LineID:    in.LineID,
		Address:   in.Address,
		Notes:     in.Notes,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	s.refreshAfterWrite()
	return &customer, nil
}

func (s *ClinicService) UpdateCustomer(actor uuid.UUID, id uuid.UUID, in CustomerUpdate) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
		return err
	}

	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.BirthDate != nil {
		customer.BirthDate = in.BirthDate
	}
	if in.LineID != nil {
		customer.LineID = *in.LineID
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}

	if err := s.db.Save(&customer).Error; err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}

	s.refreshAfterWrite()
	return nil
}

// DeleteCustomer removes a customer without cascading. The store's RESTRICT
// foreign keys reject the delete while treatment records, course instances,
// appointments or transactions still reference the customer; that rejection
// is returned verbatim for the operator.
func (s *ClinicService) DeleteCustomer(actor uuid.UUID, id uuid.UUID) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	result := s.db.Delete(&models.Customer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.refreshAfterWrite()
	return nil
}

// TreatmentDetails is the operator-entered payload for a treatment history
// entry, used by both course redemption and manual logging.
type TreatmentDetails struct {
	TreatmentName string   `json:"treatmentName" binding:"required"`
	Details       string   `json:"details"`
	DoctorName    string   `json:"doctorName"`
	DoctorFee     float64  `json:"doctorFee"`
	Photos        []string `json:"photos"`
}

// AddTreatmentRecord logs a treatment that is not tied to a course instance.
// No stock is deducted and no course balance changes.
func (s *ClinicService) AddTreatmentRecord(actor uuid.UUID, customerID uuid.UUID, unitsUsed int, details TreatmentDetails) (*models.TreatmentRecord, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer not found: %w", err)
		}
		return nil, err
	}

	record := models.TreatmentRecord{
		CustomerID:    customerID,
		TreatmentName: details.TreatmentName,
		Details:       details.Details,
		DoctorName:    details.DoctorName,
		DoctorFee:     details.DoctorFee,
		UnitsUsed:     unitsUsed,
		Photos:        details.Photos,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("creating treatment record: %w", err)
	}

	s.refreshAfterWrite()
	return &record, nil
}
