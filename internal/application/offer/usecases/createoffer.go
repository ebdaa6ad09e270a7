package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/offer/dto"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type CreateOfferCommand struct {
	Code string
	TermsInput
}

type CreateOfferUseCase struct {
	offerRepo offer.Repository
	scope     scopeChecker
	logger    logger.Interface
}

func NewCreateOfferUseCase(
	offerRepo offer.Repository,
	subjectRepo catalog.SubjectRepository,
	contentTypeRepo catalog.ContentTypeRepository,
	logger logger.Interface,
) *CreateOfferUseCase {
	return &CreateOfferUseCase{
		offerRepo: offerRepo,
		scope:     scopeChecker{subjectRepo: subjectRepo, contentTypeRepo: contentTypeRepo},
		logger:    logger,
	}
}

func (uc *CreateOfferUseCase) Execute(ctx context.Context, cmd CreateOfferCommand) (*dto.OfferDTO, error) {
	o, err := offer.NewOffer(cmd.Code, cmd.toTerms())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.scope.check(ctx, cmd.TermsInput); err != nil {
		return nil, err
	}

	exists, err := uc.offerRepo.ExistsByCode(ctx, o.Code())
	if err != nil {
		uc.logger.Errorw("failed to check offer code", "error", err, "code", o.Code())
		return nil, fmt.Errorf("failed to check offer code: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("An offer with this code already exists")
	}

	if err := uc.offerRepo.Create(ctx, o); err != nil {
		if errors.Is(err, offer.ErrCodeExists) {
			return nil, apperrors.NewConflictError("An offer with this code already exists")
		}
		uc.logger.Errorw("failed to create offer", "error", err, "code", o.Code())
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	uc.logger.Infow("offer created", "offer_id", o.ID(), "code", o.Code(), "type", o.DiscountType())
	return dto.ToOfferDTO(o), nil
}
