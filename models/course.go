package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseDefinition is the catalog entry for a multi-session treatment course.
type CourseDefinition struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Price       float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	TotalUnits  int            `gorm:"column:total_units;not null" json:"totalUnits"`
	Description string         `json:"description"`
	Consumables ConsumableList `gorm:"type:jsonb" json:"consumables"` // deducted per unit redeemed
}

func (CourseDefinition) TableName() string { return "courses" }

func (cd *CourseDefinition) BeforeCreate(tx *gorm.DB) (err error) {
	if cd.ID == uuid.Nil {
		cd.ID = uuid.New()
	}
	return
}

// CustomerCourse is one purchased instance of a course definition. Name and
// total units are copied at purchase time so later catalog edits never change
// what the customer bought.
type CustomerCourse struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	CourseID   uuid.UUID `gorm:"type:uuid;index" json:"courseId"`

	CourseName     string     `gorm:"column:course_name;not null" json:"courseName"`
	TotalUnits     int        `gorm:"column:total_units;not null" json:"totalUnits"`
	RemainingUnits int        `gorm:"column:remaining_units;not null" json:"remainingUnits"`
	PurchaseDate   time.Time  `gorm:"column:purchase_date" json:"purchaseDate"`
	ExpiryDate     *time.Time `gorm:"column:expiry_date" json:"expiryDate"`
	Active         bool       `gorm:"default:true" json:"active"`
}

func (cc *CustomerCourse) BeforeCreate(tx *gorm.DB) (err error) {
	if cc.ID == uuid.Nil {
		cc.ID = uuid.New()
	}
	if cc.PurchaseDate.IsZero() {
		cc.PurchaseDate = time.Now()
	}
	return
}
