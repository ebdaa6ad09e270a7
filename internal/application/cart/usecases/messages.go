package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
)

const (
	msgSubjectNotFound     = "Subject not found"
	msgContentTypeNotFound = "Content type not found"
	msgNotForSale          = "This content is not available for purchase"
	msgBundleUnavailable   = "Bundle pricing is not available for this subject"
	msgAlreadyOwned        = "You already own this content"
	msgItemInCart          = "Item already in cart"
	msgBundleInCart        = "Bundle already in cart"
	msgPriceChanged        = "Price has changed, please refresh"
	msgCartEmpty           = "Your cart is empty"
	msgItemNotFound        = "Cart item not found"
	msgInvalidLine         = "Invalid cart line"
	msgPaymentRecorded     = "This payment has already been recorded"

	msgInvalidOfferCode   = "Invalid offer code"
	msgOfferInactive      = "This offer is not active"
	msgOfferNotStarted    = "This offer is not yet valid"
	msgOfferExpired       = "This offer has expired"
	msgOfferExhausted     = "This offer has reached its usage limit"
	msgOfferNotApplicable = "This offer does not apply to any items in your cart"
	msgOfferApplied       = "Offer applied successfully"
)

// offerRuleError converts offer rule violations into user-facing validation errors.
func offerRuleError(err error) error {
	switch {
	case errors.Is(err, offer.ErrOfferInactive):
		return apperrors.NewValidationError(msgOfferInactive)
	case errors.Is(err, offer.ErrOfferNotStarted):
		return apperrors.NewValidationError(msgOfferNotStarted)
	case errors.Is(err, offer.ErrOfferExpired):
		return apperrors.NewValidationError(msgOfferExpired)
	case errors.Is(err, offer.ErrUsageExhausted):
		return apperrors.NewValidationError(msgOfferExhausted)
	case errors.Is(err, offer.ErrNoApplicable):
		return apperrors.NewValidationError(msgOfferNotApplicable)
	default:
		return err
	}
}

// loadRedeemableOffer looks the code up and checks status, window and usage at now.
func loadRedeemableOffer(ctx context.Context, repo offer.Repository, code string, now time.Time) (*offer.Offer, error) {
	normalized := offer.NormalizeCode(code)
	if normalized == "" {
		return nil, apperrors.NewNotFoundError(msgInvalidOfferCode)
	}

	o, err := repo.GetByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, offer.ErrOfferNotFound) {
			return nil, apperrors.NewNotFoundError(msgInvalidOfferCode)
		}
		return nil, err
	}

	if err := o.CheckRedeemable(now); err != nil {
		return nil, offerRuleError(err)
	}
	return o, nil
}

func toOfferLines(items []*cart.Item) []offer.Line {
	lines := make([]offer.Line, 0, len(items))
	for _, it := range items {
		ctID, _ := it.ContentTypeID()
		lines = append(lines, offer.Line{
			SubjectID:     it.SubjectID(),
			ContentTypeID: ctID,
			IsBundle:      it.IsBundle(),
			Price:         it.Price(),
		})
	}
	return lines
}
