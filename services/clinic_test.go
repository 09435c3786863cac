package services

import (
	"testing"
	"time"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUpdateStockClampsAtZero(t *testing.T) {
	svc, admin, _ := newTestService(t)
	item, err := svc.AddInventoryItem(admin, NewInventoryItem{Name: "Gel", Quantity: 5, MinLevel: 2})
	require.NoError(t, err)

	updated, err := svc.UpdateStock(admin, item.ID, -10)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)

	updated, err = svc.UpdateStock(admin, item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	var stored models.InventoryItem
	require.NoError(t, svc.db.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, 7, stored.Quantity)
}

func TestUpdateStockUnknownItem(t *testing.T) {
	svc, admin, _ := newTestService(t)
	_, err := svc.UpdateStock(admin, uuid.New(), 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteCustomerRestrictedByDependents(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")

	_, err := svc.ProcessSale(admin, customer.ID, []SaleLine{
		{Type: "service", ItemID: uuid.New(), Name: "Consult", Price: 500, Quantity: 1},
	}, models.PaymentCash)
	require.NoError(t, err)

	err = svc.DeleteCustomer(admin, customer.ID)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))

	// Still there.
	var count int64
	svc.db.Model(&models.Customer{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteCustomerWithoutDependents(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")

	require.NoError(t, svc.DeleteCustomer(admin, customer.ID))

	var count int64
	svc.db.Model(&models.Customer{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateCustomerPartial(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")

	phone := "+66899999999"
	require.NoError(t, svc.UpdateCustomer(admin, customer.ID, CustomerUpdate{Phone: &phone}))

	var stored models.Customer
	require.NoError(t, svc.db.First(&stored, "id = ?", customer.ID).Error)
	assert.Equal(t, "Anna", stored.Name)
	assert.Equal(t, phone, stored.Phone)
}

func TestAddTreatmentRecordHasNoStockEffect(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")
	item, err := svc.AddInventoryItem(admin, NewInventoryItem{Name: "Mask", Quantity: 9, MinLevel: 2})
	require.NoError(t, err)

	record, err := svc.AddTreatmentRecord(admin, customer.ID, 1, TreatmentDetails{
		TreatmentName: "Walk-in facial",
		Details:       "paid separately",
	})
	require.NoError(t, err)
	assert.Equal(t, "Walk-in facial", record.TreatmentName)

	var stored models.InventoryItem
	require.NoError(t, svc.db.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, 9, stored.Quantity)

	var instCount int64
	svc.db.Model(&models.CustomerCourse{}).Count(&instCount)
	assert.Zero(t, instCount)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")

	apt, err := svc.AddAppointment(admin, NewAppointment{
		CustomerID: customer.ID,
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:       "14:30",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, apt.Status)

	require.NoError(t, svc.UpdateAppointmentStatus(admin, apt.ID, models.StatusConfirmed))

	var stored models.Appointment
	require.NoError(t, svc.db.First(&stored, "id = ?", apt.ID).Error)
	assert.Equal(t, models.StatusConfirmed, stored.Status)

	err = svc.UpdateAppointmentStatus(admin, uuid.New(), models.StatusCancelled)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResetDatabaseClearsEverything(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")
	course, err := svc.AddCourse(admin, NewCourse{Name: "Laser 10", Price: 20000, TotalUnits: 10})
	require.NoError(t, err)
	_, err = svc.ProcessSale(admin, customer.ID, []SaleLine{
		{Type: "course", ItemID: course.ID, Price: 20000, Quantity: 1},
	}, models.PaymentCash)
	require.NoError(t, err)

	require.NoError(t, svc.ResetDatabase(admin))

	for _, model := range []interface{}{
		&models.Customer{}, &models.CourseDefinition{}, &models.CustomerCourse{},
		&models.Transaction{}, &models.TreatmentRecord{},
	} {
		var count int64
		svc.db.Model(model).Count(&count)
		assert.Zero(t, count)
	}

	snap := svc.Snapshot()
	assert.Empty(t, snap.Customers)
	assert.Empty(t, snap.Transactions)
}
