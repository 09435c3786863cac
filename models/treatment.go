package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TreatmentRecord is an append-only history entry. Rows are created by course
// redemption or manual logging and never updated afterwards.
type TreatmentRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	Date          time.Time  `gorm:"not null" json:"date"`
	TreatmentName string     `gorm:"column:treatment_name;not null" json:"treatmentName"`
	Details       string     `json:"details"`
	DoctorName    string     `gorm:"column:doctor_name" json:"doctorName"`
	UnitsUsed     int        `gorm:"column:units_used" json:"unitsUsed"`
	DoctorFee     float64    `gorm:"column:doctor_fee;type:decimal(10,2);default:0" json:"doctorFee,omitempty"`
	Photos        StringList `gorm:"type:jsonb" json:"photos"`
}

func (tr *TreatmentRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if tr.ID == uuid.Nil {
		tr.ID = uuid.New()
	}
	if tr.Date.IsZero() {
		tr.Date = time.Now()
	}
	return
}
