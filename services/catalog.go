package services

import (
	"fmt"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewService is the payload for creating a catalog service.
type NewService struct {
	Name            string              `json:"name" binding:"required"`
	Price           float64             `json:"price" binding:"min=0"`
	DurationMinutes int                 `json:"durationMinutes" binding:"min=0"`
	Category        string              `json:"category"`
	ImageURL        string              `json:"imageUrl"`
	Consumables     []models.Consumable `json:"consumables"`
}

type ServiceUpdate struct {
	Name            *string              `json:"name"`
	Price           *float64             `json:"price"`
	DurationMinutes *int                 `json:"durationMinutes"`
	Category        *string              `json:"category"`
	ImageURL        *string              `json:"imageUrl"`
	Consumables     *[]models.Consumable `json:"consumables"`
}

func (s *ClinicService) AddService(actor uuid.UUID, in NewService) (*models.Service, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	service := models.Service{
		Name:            in.Name,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		Category:        in.Category,
		ImageURL:        in.ImageURL,
		Consumables:     in.Consumables,
	}
	if err := s.db.Create(&service).Error; err != nil {
		return nil, fmt.Errorf("creating service: %w", err)
	}

	s.refreshAfterWrite()
	return &service, nil
}

func (s *ClinicService) UpdateService(actor uuid.UUID, id uuid.UUID, in ServiceUpdate) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	var service models.Service
	if err := s.db.First(&service, "id = ?", id).Error; err != nil {
		return err
	}

	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Price != nil {
		service.Price = *in.Price
	}
	if in.DurationMinutes != nil {
		service.DurationMinutes = *in.DurationMinutes
	}
	if in.Category != nil {
		service.Category = *in.Category
	}
	if in.ImageURL != nil {
		service.ImageURL = *in.ImageURL
	}
	if in.Consumables != nil {
		service.Consumables = *in.Consumables
	}

	if err := s.db.Save(&service).Error; err != nil {
		return fmt.Errorf("updating service: %w", err)
	}

	s.refreshAfterWrite()
	return nil
}

func (s *ClinicService) DeleteService(actor uuid.UUID, id uuid.UUID) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	result := s.db.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.refreshAfterWrite()
	return nil
}

// NewCourse is the payload for creating a course definition.
type NewCourse struct {
	Name        string              `json:"name" binding:"required"`
	Price       float64             `json:"price" binding:"min=0"`
	TotalUnits  int                 `json:"totalUnits" binding:"required,min=1"`
	Description string              `json:"description"`
	Consumables []models.Consumable `json:"consumables"`
}

type CourseUpdate struct {
	Name        *string              `json:"name"`
	Price       *float64             `json:"price"`
	TotalUnits  *int                 `json:"totalUnits"`
	Description *string              `json:"description"`
	Consumables *[]models.Consumable `json:"consumables"`
}

func (s *ClinicService) AddCourse(actor uuid.UUID, in NewCourse) (*models.CourseDefinition, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	course := models.CourseDefinition{
		Name:        in.Name,
		Price:       in.Price,
		TotalUnits:  in.TotalUnits,
		Description: in.Description,
		Consumables: in.Consumables,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, fmt.Errorf("creating course: %w", err)
	}

	s.refreshAfterWrite()
	return &course, nil
}

// UpdateCourse edits the catalog definition only. Purchased instances keep
// their snapshot of name and total units.
func (s *ClinicService) UpdateCourse(actor uuid.UUID, id uuid.UUID, in CourseUpdate) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	var course models.CourseDefinition
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		return err
	}

	if in.Name != nil {
		course.Name = *in.Name
	}
	if in.Price != nil {
		course.Price = *in.Price
	}
	if in.TotalUnits != nil {
		course.TotalUnits = *in.TotalUnits
	}
	if in.Description != nil {
		course.Description = *in.Description
	}
	if in.Consumables != nil {
		course.Consumables = *in.Consumables
	}

	if err := s.db.Save(&course).Error; err != nil {
		return fmt.Errorf("updating course: %w", err)
	}

	s.refreshAfterWrite()
	return nil
}

func (s *ClinicService) DeleteCourse(actor uuid.UUID, id uuid.UUID) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	result := s.db.Delete(&models.CourseDefinition{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.refreshAfterWrite()
	return nil
}
