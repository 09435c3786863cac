package services

import (
	"testing"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessSaleGrantsIndependentInstances(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")

	course, err := svc.AddCourse(admin, NewCourse{Name: "Laser 10", Price: 20000, TotalUnits: 10})
	require.NoError(t, err)

	transaction, err := svc.ProcessSale(admin, customer.ID, []SaleLine{
		{Type: "course", ItemID: course.ID, Price: 20000, Quantity: 2},
	}, models.PaymentCash)
	require.NoError(t, err)

	assert.Equal(t, 40000.0, transaction.TotalAmount)
	require.Len(t, transaction.Items, 1)
	assert.Equal(t, "Laser 10", transaction.Items[0].Name)
	assert.Equal(t, 2, transaction.Items[0].Quantity)

	// Two separate 10-unit instances, never one pooled 20-unit balance.
	var instances []models.CustomerCourse
	require.NoError(t, svc.db.Where("customer_id = ?", customer.ID).Find(&instances).Error)
	require.Len(t, instances, 2)
	for _, inst := range instances {
		assert.Equal(t, course.ID, inst.CourseID)
		assert.Equal(t, "Laser 10", inst.CourseName)
		assert.Equal(t, 10, inst.TotalUnits)
		assert.Equal(t, 10, inst.RemainingUnits)
		assert.True(t, inst.Active)
	}
	assert.NotEqual(t, instances[0].ID, instances[1].ID)

	// The snapshot reflects the sale without another explicit refresh.
	snap := svc.Snapshot()
	require.Len(t, snap.Customers, 1)
	assert.Len(t, snap.Customers[0].ActiveCourses, 2)
	assert.Len(t, snap.Transactions, 1)
}

func TestProcessSaleEmptyCart(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")

	_, err := svc.ProcessSale(admin, customer.ID, nil, models.PaymentCash)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestProcessSaleUnauthorizedWritesNothing(t *testing.T) {
	svc, admin, nobody := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")
	course, err := svc.AddCourse(admin, NewCourse{Name: "Facial 5", Price: 5000, TotalUnits: 5})
	require.NoError(t, err)

	_, err = svc.ProcessSale(nobody, customer.ID, []SaleLine{
		{Type: "course", ItemID: course.ID, Price: 5000, Quantity: 1},
	}, models.PaymentCash)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	var txCount, instCount int64
	svc.db.Model(&models.Transaction{}).Count(&txCount)
	svc.db.Model(&models.CustomerCourse{}).Count(&instCount)
	assert.Zero(t, txCount)
	assert.Zero(t, instCount)
}

func TestProcessSaleUnknownCustomer(t *testing.T) {
	svc, admin, _ := newTestService(t)

	_, err := svc.ProcessSale(admin, uuid.New(), []SaleLine{
		{Type: "service", ItemID: uuid.New(), Price: 100, Quantity: 1},
	}, models.PaymentTransfer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer not found")
}

func TestProcessSaleMissingCourseDefinition(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")

	// The cart references a definition that was deleted before checkout. The
	// sale is still recorded; no instances are granted.
	transaction, err := svc.ProcessSale(admin, customer.ID, []SaleLine{
		{Type: "course", ItemID: uuid.New(), Name: "Ghost course", Price: 1000, Quantity: 1},
	}, models.PaymentCreditCard)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, transaction.TotalAmount)

	var instCount int64
	svc.db.Model(&models.CustomerCourse{}).Count(&instCount)
	assert.Zero(t, instCount)
}

func TestProcessSaleServiceLineGrantsNothing(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")
	service, err := svc.AddService(admin, NewService{Name: "Consultation", Price: 500})
	require.NoError(t, err)

	transaction, err := svc.ProcessSale(admin, customer.ID, []SaleLine{
		{Type: "service", ItemID: service.ID, Price: 500, Quantity: 3},
	}, models.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, transaction.TotalAmount)
	assert.Equal(t, "Consultation", transaction.Items[0].Name)

	var instCount int64
	svc.db.Model(&models.CustomerCourse{}).Count(&instCount)
	assert.Zero(t, instCount)
}

func TestProcessSaleMixedCart(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")
	course, err := svc.AddCourse(admin, NewCourse{Name: "Botox 3", Price: 9000, TotalUnits: 3})
	require.NoError(t, err)

	transaction, err := svc.ProcessSale(admin, customer.ID, []SaleLine{
		{Type: "course", ItemID: course.ID, Price: 9000, Quantity: 1},
		{Type: "service", ItemID: uuid.New(), Name: "Skin analysis", Price: 350.50, Quantity: 2},
	}, models.PaymentCash)
	require.NoError(t, err)

	assert.Equal(t, 9701.0, transaction.TotalAmount)
	require.Len(t, transaction.Items, 2)

	var instCount int64
	svc.db.Model(&models.CustomerCourse{}).Count(&instCount)
	assert.EqualValues(t, 1, instCount)
}
