package services

import (
	"testing"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleAuthorityDeniesWithoutRow(t *testing.T) {
	auth := NewRoleAuthority(newTestDB(t))
	assert.False(t, auth.IsAuthorized(uuid.New()))
}

func TestRoleAuthorityDeniesNilIdentity(t *testing.T) {
	auth := NewRoleAuthority(newTestDB(t))
	assert.False(t, auth.IsAuthorized(uuid.Nil))
}

func TestRoleAuthorityGrantsAdminRole(t *testing.T) {
	db := newTestDB(t)
	auth := NewRoleAuthority(db)

	userID := uuid.New()
	require.NoError(t, db.Create(&models.UserRole{UserID: userID, Role: models.RoleAdmin}).Error)

	assert.True(t, auth.IsAuthorized(userID))
}

func TestRoleAuthorityCachesUntilInvalidated(t *testing.T) {
	db := newTestDB(t)
	auth := NewRoleAuthority(db)
	userID := uuid.New()

	// First answer is "no" and it sticks even after the role is granted.
	assert.False(t, auth.IsAuthorized(userID))
	require.NoError(t, db.Create(&models.UserRole{UserID: userID, Role: models.RoleAdmin}).Error)
	assert.False(t, auth.IsAuthorized(userID))

	auth.Invalidate(userID)
	assert.True(t, auth.IsAuthorized(userID))
}

func TestRoleAuthorityDeniesNonAdminRole(t *testing.T) {
	db := newTestDB(t)
	auth := NewRoleAuthority(db)
	userID := uuid.New()
	require.NoError(t, db.Create(&models.UserRole{UserID: userID, Role: "staff"}).Error)

	assert.False(t, auth.IsAuthorized(userID))
}

func TestRoleAuthorityDeniesOnMissingTable(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.UserRole{}))
	auth := NewRoleAuthority(db)

	assert.False(t, auth.IsAuthorized(uuid.New()))
}

func TestGrantAdminUpserts(t *testing.T) {
	svc, admin, _ := newTestService(t)
	userID := uuid.New()

	require.NoError(t, svc.GrantAdmin(admin, userID))

	var role models.UserRole
	require.NoError(t, svc.db.Where("user_id = ?", userID).First(&role).Error)
	assert.Equal(t, models.RoleAdmin, role.Role)

	// Granting again updates in place rather than duplicating.
	require.NoError(t, svc.GrantAdmin(admin, userID))
	var count int64
	svc.db.Model(&models.UserRole{}).Where("user_id = ?", userID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestListUserRolesRequiresAdmin(t *testing.T) {
	svc, admin, nobody := newTestService(t)

	_, err := svc.ListUserRoles(nobody)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	roles, err := svc.ListUserRoles(admin)
	require.NoError(t, err)
	assert.NotNil(t, roles)
}
