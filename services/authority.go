package services

import (
	"errors"
	"sync"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Authority answers whether an identity may mutate clinic data. It is an
// interface so tests can substitute a fixed policy.
type Authority interface {
	IsAuthorized(userID uuid.UUID) bool
	Invalidate(userID uuid.UUID)
}

// RoleAuthority resolves write privilege from the user_roles table and caches
// the answer for the lifetime of the session. Lookup failures never grant
// access: a missing row, a missing table, or any other error all resolve to
// false. Missing row and missing table are expected during initial setup and
// are not even logged.
type RoleAuthority struct {
	db    *gorm.DB
	mu    sync.RWMutex
	cache map[uuid.UUID]bool
}

func NewRoleAuthority(db *gorm.DB) *RoleAuthority {
	return &RoleAuthority{db: db, cache: make(map[uuid.UUID]bool)}
}

func (a *RoleAuthority) IsAuthorized(userID uuid.UUID) bool {
	if userID == uuid.Nil {
		return false
	}

	a.mu.RLock()
	cached, ok := a.cache[userID]
	a.mu.RUnlock()
	if ok {
		return cached
	}

	admin := a.lookup(userID)

	a.mu.Lock()
	a.cache[userID] = admin
	a.mu.Unlock()
	return admin
}

func (a *RoleAuthority) lookup(userID uuid.UUID) bool {
	var role models.UserRole
	err := a.db.Where("user_id = ?", userID).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || IsUndefinedTable(err) {
			return false
		}
		logrus.WithError(err).WithField("userId", userID).Debug("admin role check failed")
		return false
	}
	return role.Role == models.RoleAdmin
}

// Invalidate drops the cached answer for an identity. Called on login,
// logout and role changes.
func (a *RoleAuthority) Invalidate(userID uuid.UUID) {
	a.mu.Lock()
	delete(a.cache, userID)
	a.mu.Unlock()
}
