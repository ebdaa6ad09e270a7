// Package common holds types shared by every application use case.
package common

import (
	"context"

	"github.com/lumen-edu/lumen/internal/shared/authorization"
	"github.com/lumen-edu/lumen/internal/shared/constants"
	"github.com/lumen-edu/lumen/internal/shared/errors"
)

// UserContext identifies the caller. It is built once per request from the verified
// session and passed explicitly to every use case.
type UserContext struct {
	UserID string
	Email  string
	Role   authorization.UserRole
}

// Require returns an unauthorized error when no user is signed in.
func (u UserContext) Require() error {
	if u.UserID == "" {
		return errors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	return nil
}

func (u UserContext) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// TransactionRunner runs fn inside a single database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
