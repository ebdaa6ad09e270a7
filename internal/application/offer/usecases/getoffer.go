package usecases

import (
	"context"

	"github.com/lumen-edu/lumen/internal/application/offer/dto"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type GetOfferUseCase struct {
	offerRepo offer.Repository
	logger    logger.Interface
}

func NewGetOfferUseCase(offerRepo offer.Repository, logger logger.Interface) *GetOfferUseCase {
	return &GetOfferUseCase{offerRepo: offerRepo, logger: logger}
}

func (uc *GetOfferUseCase) Execute(ctx context.Context, id string) (*dto.OfferDTO, error) {
	o, err := loadOffer(ctx, uc.offerRepo, id)
	if err != nil {
		return nil, err
	}
	return dto.ToOfferDTO(o), nil
}
