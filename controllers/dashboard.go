// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"clinicpro-backend/models"
	"clinicpro-backend/services"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DashboardController struct {
	Clinic *services.ClinicService
}

// GetOverview aggregates the headline numbers for the dashboard from the
// cached snapshot, so a page load never fans out into table scans.
func (dc *DashboardController) GetOverview(c *gin.Context) {
	snap := dc.Clinic.Snapshot()
	now := time.Now()
	today := utils.BeginningOfDay(now)

	todayAppointments := []models.Appointment{}
	for _, apt := range snap.Appointments {
		if utils.BeginningOfDay(apt.Date).Equal(today) && apt.Status != models.StatusCancelled {
			todayAppointments = append(todayAppointments, apt)
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthlyRevenue := decimal.Zero
	for _, t := range snap.Transactions {
		if !t.CreatedAt.Before(monthStart) {
			monthlyRevenue = monthlyRevenue.Add(decimal.NewFromFloat(t.TotalAmount))
		}
	}

	lowStock := []models.InventoryItem{}
	for _, item := range snap.Inventory {
		if item.LowStock() {
			lowStock = append(lowStock, item)
		}
	}

	activeCourses := 0
	for _, cust := range snap.Customers {
		for _, course := range cust.ActiveCourses {
			if course.Active {
				activeCourses++
			}
		}
	}

	recent := snap.Transactions
	if len(recent) > 10 {
		recent = recent[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":     len(snap.Customers),
		"todayAppointments":  todayAppointments,
		"monthlyRevenue":     monthlyRevenue.Round(2).InexactFloat64(),
		"lowStockItems":      lowStock,
		"activeCourses":      activeCourses,
		"recentTransactions": recent,
	})
}
