package services

import (
	"testing"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUpdateTransactionItemsRecomputesTotal(t *testing.T) {
	svc, admin, _ := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")

	original, err := svc.ProcessSale(admin, customer.ID, []SaleLine{
		{Type: "service", ItemID: uuid.New(), Name: "Consult", Price: 500, Quantity: 1},
	}, models.PaymentCash)
	require.NoError(t, err)
	require.Equal(t, 500.0, original.TotalAmount)

	// Operator corrects a mispriced entry.
	corrected, err := svc.UpdateTransactionItems(admin, original.ID, []models.TransactionItem{
		{Name: "Consult", Price: 350.50, Quantity: 1},
		{Name: "Skin test", Price: 99.50, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 549.50, corrected.TotalAmount)

	var stored models.Transaction
	require.NoError(t, svc.db.First(&stored, "id = ?", original.ID).Error)
	assert.Equal(t, 549.50, stored.TotalAmount)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "Skin test", stored.Items[1].Name)

	// Payment method and customer are untouched by a correction.
	assert.Equal(t, models.PaymentCash, stored.PaymentMethod)
	assert.Equal(t, customer.ID, stored.CustomerID)
}

func TestUpdateTransactionItemsUnknownID(t *testing.T) {
	svc, admin, _ := newTestService(t)
	_, err := svc.UpdateTransactionItems(admin, uuid.New(), []models.TransactionItem{
		{Name: "Consult", Price: 100, Quantity: 1},
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateTransactionItemsUnauthorized(t *testing.T) {
	svc, admin, nobody := newTestService(t)
	customer := seedCustomer(t, svc, admin, "Anna")
	original, err := svc.ProcessSale(admin, customer.ID, []SaleLine{
		{Type: "service", ItemID: uuid.New(), Name: "Consult", Price: 500, Quantity: 1},
	}, models.PaymentCash)
	require.NoError(t, err)

	_, err = svc.UpdateTransactionItems(nobody, original.ID, []models.TransactionItem{
		{Name: "Consult", Price: 1, Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	var stored models.Transaction
	require.NoError(t, svc.db.First(&stored, "id = ?", original.ID).Error)
	assert.Equal(t, 500.0, stored.TotalAmount)
}
