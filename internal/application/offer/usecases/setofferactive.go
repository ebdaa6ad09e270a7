package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/offer/dto"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type SetOfferActiveCommand struct {
	ID     string
	Active bool
}

type SetOfferActiveUseCase struct {
	offerRepo offer.Repository
	logger    logger.Interface
}

func NewSetOfferActiveUseCase(offerRepo offer.Repository, logger logger.Interface) *SetOfferActiveUseCase {
	return &SetOfferActiveUseCase{offerRepo: offerRepo, logger: logger}
}

func (uc *SetOfferActiveUseCase) Execute(ctx context.Context, cmd SetOfferActiveCommand) (*dto.OfferDTO, error) {
	o, err := loadOffer(ctx, uc.offerRepo, cmd.ID)
	if err != nil {
		return nil, err
	}

	if o.IsActive() == cmd.Active {
		return dto.ToOfferDTO(o), nil
	}

	o.SetActive(cmd.Active)
	if err := uc.offerRepo.Update(ctx, o); err != nil {
		uc.logger.Errorw("failed to toggle offer", "error", err, "offer_id", o.ID())
		return nil, fmt.Errorf("failed to toggle offer: %w", err)
	}

	uc.logger.Infow("offer status changed", "offer_id", o.ID(), "code", o.Code(), "active", cmd.Active)
	return dto.ToOfferDTO(o), nil
}
