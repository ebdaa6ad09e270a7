package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleLearner, ParseUserRole("learner"))
	assert.Equal(t, RoleLearner, ParseUserRole("root"))
	assert.Equal(t, RoleLearner, ParseUserRole(""))
}

func TestUserRole_IsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleLearner.IsAdmin())
}
