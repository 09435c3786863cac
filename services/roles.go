package services

import (
	"fmt"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUserRoles returns all role assignments. Admin-only.
func (s *ClinicService) ListUserRoles(actor uuid.UUID) ([]models.UserRole, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	roles := []models.UserRole{}
	if err := s.db.Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("listing user roles: %w", err)
	}
	return roles, nil
}

// GrantAdmin upserts the admin role for a user and drops any cached
// authorization answer for them so the change applies immediately.
func (s *ClinicService) GrantAdmin(actor uuid.UUID, userID uuid.UUID) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	var existing models.UserRole
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case err == nil:
		if err := s.db.Model(&existing).Update("role", models.RoleAdmin).Error; err != nil {
			return fmt.Errorf("updating role: %w", err)
		}
	case err == gorm.ErrRecordNotFound:
		if err := s.db.Create(&models.UserRole{UserID: userID, Role: models.RoleAdmin}).Error; err != nil {
			return fmt.Errorf("creating role: %w", err)
		}
	default:
		return err
	}

	s.auth.Invalidate(userID)
	return nil
}

// ResetDatabase wipes all clinic tables in foreign-key order. Admin-only,
// meant for test environments and fresh setups.
func (s *ClinicService) ResetDatabase(actor uuid.UUID) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	// Children before parents so RESTRICT constraints never fire.
	tables := []interface{}{
		&models.TreatmentRecord{},
		&models.CustomerCourse{},
		&models.Appointment{},
		&models.Transaction{},
		&models.InventoryItem{},
		&models.Service{},
		&models.CourseDefinition{},
		&models.Customer{},
	}
	for _, table := range tables {
		if err := s.db.Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clearing table: %w", err)
		}
	}

	s.refreshAfterWrite()
	return nil
}
