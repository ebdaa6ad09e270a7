package offer

import "errors"

var (
	ErrOfferNotFound   = errors.New("offer not found")
	ErrCodeExists      = errors.New("offer code already exists")
	ErrOfferInactive   = errors.New("offer is not active")
	ErrOfferNotStarted = errors.New("offer is not yet valid")
	ErrOfferExpired    = errors.New("offer has expired")
	ErrUsageExhausted  = errors.New("offer has reached its usage limit")
	ErrNoApplicable    = errors.New("offer does not apply to any items")
)
