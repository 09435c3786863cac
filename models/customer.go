package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name      string     `gorm:"not null" json:"name"`
	Phone     string     `gorm:"not null" json:"phone"`
	Email     string     `json:"email"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	LineID    string     `gorm:"column:line_id" json:"lineId,omitempty"`
	Address   string     `json:"address,omitempty"`
	Notes     string     `json:"notes"`

	// Children are loaded table-by-table and joined in memory during a
	// snapshot refresh, not preloaded. The foreign keys are RESTRICT on
	// purpose: a customer with history cannot be deleted.
	ActiveCourses    []CustomerCourse  `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"activeCourses"`
	TreatmentHistory []TreatmentRecord `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"treatmentHistory"`
	Appointments     []Appointment     `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"-"`
	Transactions     []Transaction     `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
