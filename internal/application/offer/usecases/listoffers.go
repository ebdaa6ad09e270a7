package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/offer/dto"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/shared/logger"
	"github.com/lumen-edu/lumen/internal/shared/utils"
)

type ListOffersQuery struct {
	Active   *bool
	Page     int
	PageSize int
}

type ListOffersResult struct {
	Offers   []*dto.OfferDTO
	Total    int64
	Page     int
	PageSize int
}

type ListOffersUseCase struct {
	offerRepo offer.Repository
	logger    logger.Interface
}

func NewListOffersUseCase(offerRepo offer.Repository, logger logger.Interface) *ListOffersUseCase {
	return &ListOffersUseCase{offerRepo: offerRepo, logger: logger}
}

func (uc *ListOffersUseCase) Execute(ctx context.Context, query ListOffersQuery) (*ListOffersResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	offers, total, err := uc.offerRepo.List(ctx, offer.ListFilter{
		Active:   query.Active,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list offers", "error", err)
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	return &ListOffersResult{
		Offers:   dto.ToOfferDTOList(offers),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
