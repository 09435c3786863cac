// controllers/system.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"clinicpro-backend/services"

	"github.com/gin-gonic/gin"
)

type SystemController struct {
	Clinic *services.ClinicService
}

// GetStatus reports snapshot health: when it was last refreshed and any
// standing condition such as missing tables after a partial setup.
func (sc *SystemController) GetStatus(c *gin.Context) {
	snap := sc.Clinic.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"condition":   sc.Clinic.Condition(),
		"refreshedAt": snap.RefreshedAt,
		"counts": gin.H{
			"customers":    len(snap.Customers),
			"services":     len(snap.Services),
			"courses":      len(snap.Courses),
			"inventory":    len(snap.Inventory),
			"appointments": len(snap.Appointments),
			"transactions": len(snap.Transactions),
		},
	})
}

// Refresh forces a full snapshot reload. On failure the previous snapshot
// stays in place and the standing condition is reported.
func (sc *SystemController) Refresh(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	if err := sc.Clinic.Refresh(); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrMissingTables) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"error":     err.Error(),
			"condition": sc.Clinic.Condition(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Snapshot refreshed"})
}

// Backup downloads the current snapshot as a SQL script.
func (sc *SystemController) Backup(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	script := sc.Clinic.ExportSQL()
	filename := fmt.Sprintf("clinic_backup_%s.sql", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/sql", []byte(script))
}

// Reset wipes all clinic data. Admin-only and destructive.
func (sc *SystemController) Reset(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	if err := sc.Clinic.ResetDatabase(actor); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Database reset complete"})
}
