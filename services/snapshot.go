package services

import (
	"fmt"

	"clinicpro-backend/models"
	"clinicpro-backend/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Refresh reloads all eight tables concurrently, joins child rows onto their
// customers and swaps the assembled snapshot into the store. The refresh is
// all-or-nothing: on any hard failure the previous snapshot is retained.
//
// Outcomes are classified per table read:
//   - a "relation does not exist" error on any table surfaces the
//     MISSING_TABLES condition so the caller can show setup guidance
//   - permission-denied reads are soft: logged at debug level, the table is
//     treated as empty (new non-admin identities see an empty clinic, not an
//     error)
//   - anything else is a generic load error
func (s *ClinicService) Refresh() error {
	var (
		customers    []models.Customer
		services     []models.Service
		courses      []models.CourseDefinition
		inventory    []models.InventoryItem
		appointments []models.Appointment
		transactions []models.Transaction
		custCourses  []models.CustomerCourse
		treatments   []models.TreatmentRecord
	)

	loadErrs := make([]error, 8)
	var g errgroup.Group
	g.Go(func() error {
		loadErrs[0] = s.db.Order("name").Find(&customers).Error
		return nil
	})
	g.Go(func() error {
		loadErrs[1] = s.db.Order("name").Find(&services).Error
		return nil
	})
	g.Go(func() error {
		loadErrs[2] = s.db.Order("name").Find(&courses).Error
		return nil
	})
	g.Go(func() error {
		loadErrs[3] = s.db.Order("name").Find(&inventory).Error
		return nil
	})
	g.Go(func() error {
		loadErrs[4] = s.db.Order("date desc").Find(&appointments).Error
		return nil
	})
	g.Go(func() error {
		loadErrs[5] = s.db.Order("created_at desc").Find(&transactions).Error
		return nil
	})
	g.Go(func() error {
		loadErrs[6] = s.db.Find(&custCourses).Error
		return nil
	})
	g.Go(func() error {
		loadErrs[7] = s.db.Order("date desc").Find(&treatments).Error
		return nil
	})
	_ = g.Wait()

	for _, err := range loadErrs {
		if IsUndefinedTable(err) {
			logrus.WithError(err).Error("database tables missing")
			s.snapshots.Fail(store.ConditionMissingTables)
			return ErrMissingTables
		}
	}
	for i, err := range loadErrs {
		if err == nil {
			continue
		}
		if IsPermissionDenied(err) {
			// Expected for identities without admin access; the table
			// reads as empty rather than failing the refresh.
			logrus.WithError(err).Debug("table read denied, using empty result")
			loadErrs[i] = nil
			continue
		}
		s.snapshots.Fail(store.ConditionLoadError)
		return fmt.Errorf("loading clinic data: %w", err)
	}

	// Join children onto their customers by foreign key.
	coursesByCustomer := make(map[uuid.UUID][]models.CustomerCourse, len(customers))
	for _, cc := range custCourses {
		coursesByCustomer[cc.CustomerID] = append(coursesByCustomer[cc.CustomerID], cc)
	}
	treatmentsByCustomer := make(map[uuid.UUID][]models.TreatmentRecord, len(customers))
	for _, tr := range treatments {
		treatmentsByCustomer[tr.CustomerID] = append(treatmentsByCustomer[tr.CustomerID], tr)
	}
	for i := range customers {
		customers[i].ActiveCourses = coursesByCustomer[customers[i].ID]
		if customers[i].ActiveCourses == nil {
			customers[i].ActiveCourses = []models.CustomerCourse{}
		}
		customers[i].TreatmentHistory = treatmentsByCustomer[customers[i].ID]
		if customers[i].TreatmentHistory == nil {
			customers[i].TreatmentHistory = []models.TreatmentRecord{}
		}
	}

	snap := store.Empty()
	if customers != nil {
		snap.Customers = customers
	}
	if services != nil {
		snap.Services = services
	}
	if courses != nil {
		snap.Courses = courses
	}
	if inventory != nil {
		snap.Inventory = inventory
	}
	if appointments != nil {
		snap.Appointments = appointments
	}
	if transactions != nil {
		snap.Transactions = transactions
	}
	s.snapshots.Swap(snap)
	return nil
}
