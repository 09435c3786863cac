package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Price           float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int            `json:"durationMinutes"` // in minutes
	Category        string         `gorm:"default:'General'" json:"category"`
	ImageURL        string         `gorm:"column:image_url" json:"imageUrl,omitempty"`
	Consumables     ConsumableList `gorm:"type:jsonb" json:"consumables"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
