package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lumen-edu/lumen/internal/application/catalog/dto"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type SetContentTypePricingCommand struct {
	SubjectID     string
	ContentTypeID string
	Price         decimal.Decimal
}

type SetContentTypePricingUseCase struct {
	subjectRepo     catalog.SubjectRepository
	contentTypeRepo catalog.ContentTypeRepository
	pricingRepo     catalog.PricingRepository
	cache           SubjectDetailCache
	logger          logger.Interface
}

func NewSetContentTypePricingUseCase(
	subjectRepo catalog.SubjectRepository,
	contentTypeRepo catalog.ContentTypeRepository,
	pricingRepo catalog.PricingRepository,
	cache SubjectDetailCache,
	logger logger.Interface,
) *SetContentTypePricingUseCase {
	return &SetContentTypePricingUseCase{
		subjectRepo:     subjectRepo,
		contentTypeRepo: contentTypeRepo,
		pricingRepo:     pricingRepo,
		cache:           cache,
		logger:          logger,
	}
}

func (uc *SetContentTypePricingUseCase) Execute(ctx context.Context, cmd SetContentTypePricingCommand) (*dto.ContentTypePriceDTO, error) {
	subject, err := loadSubject(ctx, uc.subjectRepo, cmd.SubjectID)
	if err != nil {
		return nil, err
	}
	ct, err := loadContentType(ctx, uc.contentTypeRepo, cmd.ContentTypeID)
	if err != nil {
		return nil, err
	}

	pricing, err := uc.pricingRepo.Get(ctx, subject.ID(), ct.ID())
	switch {
	case errors.Is(err, catalog.ErrPricingNotFound):
		pricing, err = catalog.NewContentTypePricing(subject.ID(), ct.ID(), cmd.Price)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	case err != nil:
		uc.logger.Errorw("failed to get pricing", "error", err, "subject_id", subject.ID())
		return nil, fmt.Errorf("failed to get pricing: %w", err)
	default:
		if err := pricing.UpdatePrice(cmd.Price); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.pricingRepo.Upsert(ctx, pricing); err != nil {
		uc.logger.Errorw("failed to save pricing", "error", err, "subject_id", subject.ID(), "content_type_id", ct.ID())
		return nil, fmt.Errorf("failed to save pricing: %w", err)
	}
	invalidate(ctx, uc.cache, uc.logger, subject.Slug())

	uc.logger.Infow("content type price set",
		"subject_id", subject.ID(),
		"content_type_id", ct.ID(),
		"price", pricing.Price().String())

	return dto.ToContentTypePriceDTO(pricing, ct.Name()), nil
}
