package services

import (
	"testing"

	"clinicpro-backend/models"
	"clinicpro-backend/store"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeAuthority is a fixed allow-list so tests control permissions without
// touching the user_roles table.
type fakeAuthority struct {
	allowed map[uuid.UUID]bool
}

func (f *fakeAuthority) IsAuthorized(userID uuid.UUID) bool { return f.allowed[userID] }
func (f *fakeAuthority) Invalidate(userID uuid.UUID)        {}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and shared.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Customer{},
		&models.Service{},
		&models.CourseDefinition{},
		&models.CustomerCourse{},
		&models.TreatmentRecord{},
		&models.InventoryItem{},
		&models.Appointment{},
		&models.Transaction{},
	))
	return db
}

// newTestService returns a wired service, an authorized actor and an actor
// with no privileges.
func newTestService(t *testing.T) (*ClinicService, uuid.UUID, uuid.UUID) {
	t.Helper()

	admin := uuid.New()
	nobody := uuid.New()
	auth := &fakeAuthority{allowed: map[uuid.UUID]bool{admin: true}}
	svc := NewClinicService(newTestDB(t), auth, store.New())
	return svc, admin, nobody
}

func seedCustomer(t *testing.T, svc *ClinicService, admin uuid.UUID, name string) *models.Customer {
	t.Helper()
	customer, err := svc.AddCustomer(admin, NewCustomer{Name: name, Phone: "+66812345678"})
	require.NoError(t, err)
	return customer
}
