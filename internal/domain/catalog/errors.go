package catalog

import "errors"

var (
	ErrSubjectNotFound       = errors.New("subject not found")
	ErrSubjectInactive       = errors.New("subject is not available")
	ErrSubjectSlugExists     = errors.New("subject slug already exists")
	ErrContentTypeNotFound   = errors.New("content type not found")
	ErrContentTypeSlugExists = errors.New("content type slug already exists")
	ErrPricingNotFound       = errors.New("no price set for this content type")
	ErrBundleUnavailable     = errors.New("bundle pricing is not available for this subject")
	ErrInvalidPrice          = errors.New("price must be greater than zero")
)
