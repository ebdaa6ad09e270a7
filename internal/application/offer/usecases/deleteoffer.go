package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type DeleteOfferUseCase struct {
	offerRepo offer.Repository
	logger    logger.Interface
}

func NewDeleteOfferUseCase(offerRepo offer.Repository, logger logger.Interface) *DeleteOfferUseCase {
	return &DeleteOfferUseCase{offerRepo: offerRepo, logger: logger}
}

func (uc *DeleteOfferUseCase) Execute(ctx context.Context, id string) error {
	o, err := loadOffer(ctx, uc.offerRepo, id)
	if err != nil {
		return err
	}

	if err := uc.offerRepo.Delete(ctx, o.ID()); err != nil {
		uc.logger.Errorw("failed to delete offer", "error", err, "offer_id", o.ID())
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	uc.logger.Infow("offer deleted", "offer_id", o.ID(), "code", o.Code())
	return nil
}
