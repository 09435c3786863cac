package services

import (
	"fmt"
	"time"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewAppointment is the payload for booking an appointment.
type NewAppointment struct {
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
	ServiceID  uuid.UUID `json:"serviceId"`
	Date       time.Time `json:"date" binding:"required"`
	Time       string    `json:"time"`
	Status     string    `json:"status" binding:"omitempty,oneof=Pending Confirmed Completed Cancelled"`
	DoctorName string    `json:"doctorName"`
}

func (s *ClinicService) AddAppointment(actor uuid.UUID, in NewAppointment) (*models.Appointment, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.StatusPending
	}
	apt := models.Appointment{
		CustomerID: in.CustomerID,
		ServiceID:  in.ServiceID,
		Date:       in.Date,
		Time:       in.Time,
		Status:     status,
		DoctorName: in.DoctorName,
	}
	if err := s.db.Create(&apt).Error; err != nil {
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	s.refreshAfterWrite()
	return &apt, nil
}

// UpdateAppointmentStatus sets the status directly. Any enum value is
// accepted; nothing in this service advances an appointment to Completed on
// its own.
func (s *ClinicService) UpdateAppointmentStatus(actor uuid.UUID, id uuid.UUID, status string) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	result := s.db.Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating appointment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.refreshAfterWrite()
	return nil
}

func (s *ClinicService) DeleteAppointment(actor uuid.UUID, id uuid.UUID) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	result := s.db.Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.refreshAfterWrite()
	return nil
}
