package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSQLEscapesQuotes(t *testing.T) {
	svc, admin, _ := newTestService(t)
	_, err := svc.AddCustomer(admin, NewCustomer{Name: "O'Brien", Phone: "+66812345678"})
	require.NoError(t, err)
	_, err = svc.AddInventoryItem(admin, NewInventoryItem{Name: "Vitamin C", Quantity: 12, MinLevel: 5})
	require.NoError(t, err)

	script := svc.ExportSQL()

	assert.Contains(t, script, "INSERT INTO customers")
	assert.Contains(t, script, "O''Brien")
	assert.Contains(t, script, "INSERT INTO inventory")
	assert.Contains(t, script, "Vitamin C")
}

func TestExportSQLEmptySnapshot(t *testing.T) {
	svc, _, _ := newTestService(t)
	script := svc.ExportSQL()

	assert.True(t, strings.HasPrefix(script, "-- Clinic Backup"))
	assert.NotContains(t, script, "INSERT INTO")
}
