package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
)

const msgOfferNotFound = "Offer not found"

// TermsInput is the admin-editable part of an offer.
type TermsInput struct {
	Description   string
	DiscountType  string
	Value         decimal.Decimal
	SubjectID     *string
	ContentTypeID *string
	ValidFrom     time.Time
	ValidUntil    time.Time
	MaxUsage      *int
}

func (in TermsInput) toTerms() offer.Terms {
	return offer.Terms{
		Description:   in.Description,
		DiscountType:  offer.DiscountType(in.DiscountType),
		Value:         in.Value,
		SubjectID:     in.SubjectID,
		ContentTypeID: in.ContentTypeID,
		ValidFrom:     in.ValidFrom,
		ValidUntil:    in.ValidUntil,
		MaxUsage:      in.MaxUsage,
	}
}

// scopeChecker verifies that the subject and content type an offer is scoped to exist.
type scopeChecker struct {
	subjectRepo     catalog.SubjectRepository
	contentTypeRepo catalog.ContentTypeRepository
}

func (c scopeChecker) check(ctx context.Context, in TermsInput) error {
	if in.SubjectID != nil && *in.SubjectID != "" {
		if _, err := c.subjectRepo.GetByID(ctx, *in.SubjectID); err != nil {
			if errors.Is(err, catalog.ErrSubjectNotFound) {
				return apperrors.NewValidationError("Offer subject does not exist")
			}
			return fmt.Errorf("failed to get subject: %w", err)
		}
	}
	if in.ContentTypeID != nil && *in.ContentTypeID != "" {
		if _, err := c.contentTypeRepo.GetByID(ctx, *in.ContentTypeID); err != nil {
			if errors.Is(err, catalog.ErrContentTypeNotFound) {
				return apperrors.NewValidationError("Offer content type does not exist")
			}
			return fmt.Errorf("failed to get content type: %w", err)
		}
	}
	return nil
}

func loadOffer(ctx context.Context, repo offer.Repository, id string) (*offer.Offer, error) {
	o, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, offer.ErrOfferNotFound) {
			return nil, apperrors.NewNotFoundError(msgOfferNotFound)
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return o, nil
}
