package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lumen-edu/lumen/internal/shared/authorization"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) (*Enforcer, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewEnforcer(db, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, e.InitDefaultPolicies())
	return e, db
}

func TestEnforcer_DefaultPolicies(t *testing.T) {
	e, _ := newTestEnforcer(t)

	learner := string(authorization.RoleLearner)
	admin := string(authorization.RoleAdmin)

	tests := []struct {
		role, resource, action string
		allowed                bool
	}{
		{learner, authorization.ResourceCart, authorization.ActionWrite, true},
		{learner, authorization.ResourceCatalog, authorization.ActionRead, true},
		{learner, authorization.ResourceCatalog, authorization.ActionWrite, false},
		{learner, authorization.ResourceOffer, authorization.ActionWrite, false},
		{learner, authorization.ResourceAccess, authorization.ActionWrite, false},
		{admin, authorization.ResourceOffer, authorization.ActionWrite, true},
		{admin, authorization.ResourceCatalog, authorization.ActionWrite, true},
		{admin, authorization.ResourceCart, authorization.ActionWrite, true},
		{"guest", authorization.ResourceCart, authorization.ActionRead, false},
	}

	for _, tt := range tests {
		allowed, err := e.Enforce(tt.role, tt.resource, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.allowed, allowed, "%s %s %s", tt.role, tt.resource, tt.action)
	}
}

func TestEnforcer_PoliciesPersist(t *testing.T) {
	e, db := newTestEnforcer(t)

	require.NoError(t, e.InitDefaultPolicies())
	require.NoError(t, e.AddPolicy("support", authorization.ResourceAccess, authorization.ActionRead))

	reloaded, err := NewEnforcer(db, logger.NewNop())
	require.NoError(t, err)

	allowed, err := reloaded.Enforce("support", authorization.ResourceAccess, authorization.ActionRead)
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, reloaded.RemovePolicy("support", authorization.ResourceAccess, authorization.ActionRead))
	allowed, err = reloaded.Enforce("support", authorization.ResourceAccess, authorization.ActionRead)
	require.NoError(t, err)
	assert.False(t, allowed)
}
