// services/maintenance.go
package services

import (
	"fmt"
	"os"
	"time"

	"clinicpro-backend/models"
	"clinicpro-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// MaintenanceService runs the daily housekeeping pass: deactivating expired
// course instances, logging low-stock items and sending SMS reminders for
// tomorrow's confirmed appointments.
type MaintenanceService struct {
	db     *gorm.DB
	clinic *ClinicService
	client *twilio.RestClient
	from   string
}

func NewMaintenanceService(db *gorm.DB, clinic *ClinicService) *MaintenanceService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &MaintenanceService{
		db:     db,
		clinic: clinic,
		client: client,
		from:   os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

func (s *MaintenanceService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", s.RunDaily)

	c.Start()
	logrus.Info("maintenance scheduler started")
}

func (s *MaintenanceService) RunDaily() {
	logrus.Info("starting daily maintenance pass")

	if err := s.DeactivateExpiredCourses(); err != nil {
		logrus.WithError(err).Error("failed to deactivate expired courses")
	}
	s.LogUpcomingExpiries()
	s.LogLowStock()
	s.SendAppointmentReminders()

	logrus.Info("daily maintenance pass completed")
}

// DeactivateExpiredCourses flips active off for course instances whose
// expiry date has passed, regardless of remaining units.
func (s *MaintenanceService) DeactivateExpiredCourses() error {
	result := s.db.Model(&models.CustomerCourse{}).
		Where("active = ? AND expiry_date IS NOT NULL AND expiry_date < ?", true, time.Now()).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		logrus.WithField("count", result.RowsAffected).Info("deactivated expired course instances")
		s.clinic.refreshAfterWrite()
	}
	return nil
}

// expiryWarningDays is how far ahead the daily pass warns about course
// instances that are about to expire with units left.
const expiryWarningDays = 7

// UpcomingExpiries returns active course instances whose expiry date falls
// within the next `days` days.
func (s *MaintenanceService) UpcomingExpiries(days int) ([]models.CustomerCourse, error) {
	now := time.Now()
	var instances []models.CustomerCourse
	if err := s.db.Where("active = ? AND expiry_date IS NOT NULL AND expiry_date >= ?", true, now).
		Find(&instances).Error; err != nil {
		return nil, err
	}

	upcoming := instances[:0]
	for _, inst := range instances {
		if utils.DaysBetween(now, *inst.ExpiryDate) <= days {
			upcoming = append(upcoming, inst)
		}
	}
	return upcoming, nil
}

// LogUpcomingExpiries warns about instances that will expire soon so the
// clinic can chase the customer before the units are lost.
func (s *MaintenanceService) LogUpcomingExpiries() {
	upcoming, err := s.UpcomingExpiries(expiryWarningDays)
	if err != nil {
		logrus.WithError(err).Error("failed to load upcoming course expiries")
		return
	}
	for _, inst := range upcoming {
		logrus.WithFields(logrus.Fields{
			"course":         inst.CourseName,
			"remainingUnits": inst.RemainingUnits,
			"expiryDate":     inst.ExpiryDate.Format("2006-01-02"),
		}).Warn("course instance expiring soon")
	}
}

// LogLowStock writes a warning per item under its reorder threshold.
func (s *MaintenanceService) LogLowStock() {
	var items []models.InventoryItem
	if err := s.db.Find(&items).Error; err != nil {
		logrus.WithError(err).Error("failed to load inventory for low-stock check")
		return
	}
	for _, item := range items {
		if item.LowStock() {
			logrus.WithFields(logrus.Fields{
				"item":     item.Name,
				"quantity": item.Quantity,
				"minLevel": item.MinLevel,
			}).Warn("inventory item below reorder level")
		}
	}
}

// SendAppointmentReminders texts customers with a confirmed appointment
// tomorrow. Skipped entirely when Twilio credentials are not configured.
func (s *MaintenanceService) SendAppointmentReminders() {
	if s.client == nil || s.from == "" {
		logrus.Debug("twilio not configured, skipping appointment reminders")
		return
	}

	tomorrow := time.Now().AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())
	end := start.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := s.db.Where("status = ? AND date >= ? AND date < ?", models.StatusConfirmed, start, end).
		Find(&appointments).Error; err != nil {
		logrus.WithError(err).Error("failed to load tomorrow's appointments")
		return
	}

	for _, apt := range appointments {
		var customer models.Customer
		if err := s.db.First(&customer, "id = ?", apt.CustomerID).Error; err != nil {
			logrus.WithError(err).WithField("appointmentId", apt.ID).Warn("customer lookup failed for reminder")
			continue
		}
		if customer.Phone == "" {
			continue
		}

		body := fmt.Sprintf("Hi %s, this is a reminder of your appointment tomorrow at %s.", customer.Name, apt.Time)
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(customer.Phone)
		params.SetFrom(s.from)
		params.SetBody(body)

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			logrus.WithError(err).WithField("customer", customer.Name).Error("failed to send appointment reminder")
		}
	}
}
