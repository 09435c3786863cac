package models

import (
	"time"

	"clinicpro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	gorm.Model `json:"-"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

const RoleAdmin = "admin"

// UserRole is the authorization record keyed by identity. A user without a
// row has no write privilege.
type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Role   string    `gorm:"type:varchar(20);not null" json:"role"`
}

func (UserRole) TableName() string { return "user_roles" }

func (r *UserRole) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
