package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses. Completed is a valid stored value but no workflow in
// this service produces it automatically; it can only be set via the status
// update endpoint.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	ServiceID  uuid.UUID `gorm:"type:uuid;index" json:"serviceId"`

	Date       time.Time `gorm:"not null" json:"date"`
	Time       string    `json:"time"` // "HH:MM"
	Status     string    `gorm:"default:'Pending'" json:"status"`
	DoctorName string    `gorm:"column:doctor_name" json:"doctorName"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
