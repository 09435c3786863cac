package services

import (
	"fmt"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewInventoryItem is the payload for creating a stock item.
type NewInventoryItem struct {
	Name         string  `json:"name" binding:"required"`
	Quantity     int     `json:"quantity" binding:"min=0"`
	Unit         string  `json:"unit"`
	MinLevel     int     `json:"minLevel" binding:"min=0"`
	PricePerUnit float64 `json:"pricePerUnit" binding:"min=0"`
}

type InventoryItemUpdate struct {
	Name         *string  `json:"name"`
	Quantity     *int     `json:"quantity"`
	Unit         *string  `json:"unit"`
	MinLevel     *int     `json:"minLevel"`
	PricePerUnit *float64 `json:"pricePerUnit"`
}

func (s *ClinicService) AddInventoryItem(actor uuid.UUID, in NewInventoryItem) (*models.InventoryItem, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	item := models.InventoryItem{
		Name:         in.Name,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		MinLevel:     in.MinLevel,
		PricePerUnit: in.PricePerUnit,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("creating inventory item: %w", err)
	}

	s.refreshAfterWrite()
	return &item, nil
}

func (s *ClinicService) UpdateInventoryItem(actor uuid.UUID, id uuid.UUID, in InventoryItemUpdate) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	var item models.InventoryItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return err
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.MinLevel != nil {
		item.MinLevel = *in.MinLevel
	}
	if in.PricePerUnit != nil {
		item.PricePerUnit = *in.PricePerUnit
	}

	if err := s.db.Save(&item).Error; err != nil {
		return fmt.Errorf("updating inventory item: %w", err)
	}

	s.refreshAfterWrite()
	return nil
}

func (s *ClinicService) DeleteInventoryItem(actor uuid.UUID, id uuid.UUID) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	result := s.db.Delete(&models.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.refreshAfterWrite()
	return nil
}

// UpdateStock applies a signed manual adjustment to an item's stock level.
// The resulting quantity is clamped at zero for any delta, including large
// negative ones. This is a separate path from the redemption workflow's
// consumable deduction.
func (s *ClinicService) UpdateStock(actor uuid.UUID, id uuid.UUID, delta int) (*models.InventoryItem, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	var item models.InventoryItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}

	newQuantity := item.Quantity + delta
	if newQuantity < 0 {
		newQuantity = 0
	}
	if err := s.db.Model(&item).Update("quantity", newQuantity).Error; err != nil {
		return nil, fmt.Errorf("adjusting stock: %w", err)
	}
	item.Quantity = newQuantity

	s.refreshAfterWrite()
	return &item, nil
}
