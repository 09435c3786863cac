package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Quantity     int       `gorm:"not null;default:0" json:"quantity"` // never negative, deductions clamp at zero
	Unit         string    `json:"unit"`
	MinLevel     int       `gorm:"column:min_level;default:10" json:"minLevel"`
	PricePerUnit float64   `gorm:"column:price_per_unit;type:decimal(10,2)" json:"pricePerUnit"`
}

func (InventoryItem) TableName() string { return "inventory" }

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

// LowStock reports whether the item has fallen below its reorder threshold.
func (i InventoryItem) LowStock() bool {
	return i.Quantity < i.MinLevel
}
