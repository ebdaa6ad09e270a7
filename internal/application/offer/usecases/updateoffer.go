package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/offer/dto"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

// UpdateOfferCommand replaces the terms of an offer. The code itself never changes.
type UpdateOfferCommand struct {
	ID string
	TermsInput
}

type UpdateOfferUseCase struct {
	offerRepo offer.Repository
	scope     scopeChecker
	logger    logger.Interface
}

func NewUpdateOfferUseCase(
	offerRepo offer.Repository,
	subjectRepo catalog.SubjectRepository,
	contentTypeRepo catalog.ContentTypeRepository,
	logger logger.Interface,
) *UpdateOfferUseCase {
	return &UpdateOfferUseCase{
		offerRepo: offerRepo,
		scope:     scopeChecker{subjectRepo: subjectRepo, contentTypeRepo: contentTypeRepo},
		logger:    logger,
	}
}

func (uc *UpdateOfferUseCase) Execute(ctx context.Context, cmd UpdateOfferCommand) (*dto.OfferDTO, error) {
	o, err := loadOffer(ctx, uc.offerRepo, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := o.UpdateTerms(cmd.toTerms()); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.scope.check(ctx, cmd.TermsInput); err != nil {
		return nil, err
	}

	if err := uc.offerRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to update offer", "error", err, "offer_id", o.ID())
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}

	uc.logger.Infow("offer updated", "offer_id", o.ID(), "code", o.Code())
	return dto.ToOfferDTO(o), nil
}
