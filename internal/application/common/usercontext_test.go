package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumen-edu/lumen/internal/shared/authorization"
	"github.com/lumen-edu/lumen/internal/shared/errors"
)

func TestUserContext_Require(t *testing.T) {
	err := UserContext{}.Require()
	assert.Error(t, err)
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)

	assert.NoError(t, UserContext{UserID: "u1"}.Require())
}

func TestUserContext_IsAdmin(t *testing.T) {
	assert.True(t, UserContext{UserID: "u1", Role: authorization.RoleAdmin}.IsAdmin())
	assert.False(t, UserContext{UserID: "u1", Role: authorization.RoleLearner}.IsAdmin())
}
