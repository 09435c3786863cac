package services

import (
	"testing"
	"time"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeactivateExpiredCourses(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")
	maintenance := NewMaintenanceService(svc.db, svc)

	past := time.Now().AddDate(0, -1, 0)
	future := time.Now().AddDate(0, 1, 0)

	expired := models.CustomerCourse{
		CustomerID: customer.ID, CourseID: uuid.New(),
		CourseName: "Expired", TotalUnits: 10, RemainingUnits: 4,
		ExpiryDate: &past, Active: true,
	}
	current := models.CustomerCourse{
		CustomerID: customer.ID, CourseID: uuid.New(),
		CourseName: "Current", TotalUnits: 10, RemainingUnits: 4,
		ExpiryDate: &future, Active: true,
	}
	open := models.CustomerCourse{
		CustomerID: customer.ID, CourseID: uuid.New(),
		CourseName: "No expiry", TotalUnits: 10, RemainingUnits: 4,
		Active: true,
	}
	require.NoError(t, svc.db.Create(&expired).Error)
	require.NoError(t, svc.db.Create(&current).Error)
	require.NoError(t, svc.db.Create(&open).Error)

	require.NoError(t, maintenance.DeactivateExpiredCourses())

	var stored models.CustomerCourse
	require.NoError(t, svc.db.First(&stored, "id = ?", expired.ID).Error)
	assert.False(t, stored.Active)
	// Remaining units are untouched; only active flips.
	assert.Equal(t, 4, stored.RemainingUnits)

	var storedCurrent models.CustomerCourse
	require.NoError(t, svc.db.First(&storedCurrent, "id = ?", current.ID).Error)
	assert.True(t, storedCurrent.Active)
	var storedOpen models.CustomerCourse
	require.NoError(t, svc.db.First(&storedOpen, "id = ?", open.ID).Error)
	assert.True(t, storedOpen.Active)
}

func TestUpcomingExpiries(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")
	maintenance := NewMaintenanceService(svc.db, svc)

	soon := time.Now().AddDate(0, 0, 3)
	far := time.Now().AddDate(0, 0, 30)
	past := time.Now().AddDate(0, 0, -1)

	expiringSoon := models.CustomerCourse{
		CustomerID: customer.ID, CourseID: uuid.New(),
		CourseName: "Soon", TotalUnits: 10, RemainingUnits: 4,
		ExpiryDate: &soon, Active: true,
	}
	expiringLater := models.CustomerCourse{
		CustomerID: customer.ID, CourseID: uuid.New(),
		CourseName: "Later", TotalUnits: 10, RemainingUnits: 4,
		ExpiryDate: &far, Active: true,
	}
	alreadyExpired := models.CustomerCourse{
		CustomerID: customer.ID, CourseID: uuid.New(),
		CourseName: "Past", TotalUnits: 10, RemainingUnits: 4,
		ExpiryDate: &past, Active: true,
	}
	noExpiry := models.CustomerCourse{
		CustomerID: customer.ID, CourseID: uuid.New(),
		CourseName: "Open", TotalUnits: 10, RemainingUnits: 4,
		Active: true,
	}
	for _, inst := range []*models.CustomerCourse{&expiringSoon, &expiringLater, &alreadyExpired, &noExpiry} {
		require.NoError(t, svc.db.Create(inst).Error)
	}

	upcoming, err := maintenance.UpcomingExpiries(7)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Soon", upcoming[0].CourseName)
}
