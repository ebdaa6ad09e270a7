// Package common provides shared HTTP handler utilities.
package common

import (
	"github.com/gin-gonic/gin"

	appcommon "github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/shared/authorization"
	"github.com/lumen-edu/lumen/internal/shared/constants"
	"github.com/lumen-edu/lumen/internal/shared/errors"
)

// CurrentUser builds the request-scoped UserContext from the keys the auth middleware
// stored on the gin context. Anonymous requests get an unauthorized error.
func CurrentUser(c *gin.Context) (appcommon.UserContext, error) {
	userID := c.GetString(constants.ContextKeyUserID)
	if userID == "" {
		return appcommon.UserContext{}, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	return appcommon.UserContext{
		UserID: userID,
		Email:  c.GetString(constants.ContextKeyUserEmail),
		Role:   authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}, nil
}
