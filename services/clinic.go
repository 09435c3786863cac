package services

import (
	"clinicpro-backend/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ClinicService coordinates all domain operations. Every mutating method
// passes the same authorization gate first, performs its writes inside a
// single database transaction, and reloads the snapshot on success.
type ClinicService struct {
	db        *gorm.DB
	auth      Authority
	snapshots *store.Store
}

func NewClinicService(db *gorm.DB, auth Authority, snapshots *store.Store) *ClinicService {
	return &ClinicService{db: db, auth: auth, snapshots: snapshots}
}

// Snapshot returns the current cached view of all entities.
func (s *ClinicService) Snapshot() store.Snapshot {
	return s.snapshots.Current()
}

// Condition returns the outcome of the last snapshot refresh.
func (s *ClinicService) Condition() string {
	return s.snapshots.Condition()
}

// authorize is the single write-permission gate. It runs before any side
// effect of a mutating operation.
func (s *ClinicService) authorize(actor uuid.UUID) error {
	if !s.auth.IsAuthorized(actor) {
		return ErrPermissionDenied
	}
	return nil
}

// refreshAfterWrite reloads the snapshot after a committed mutation. A
// refresh failure does not undo the mutation; the cache keeps its previous
// snapshot until a later refresh succeeds.
func (s *ClinicService) refreshAfterWrite() {
	if err := s.Refresh(); err != nil {
		logrus.WithError(err).Warn("snapshot refresh after mutation failed")
	}
}
