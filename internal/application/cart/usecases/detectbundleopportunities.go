package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/cart/dto"
	"github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type DetectBundleOpportunitiesUseCase struct {
	cartRepo    cart.Repository
	subjectRepo catalog.SubjectRepository
	contentRepo catalog.SubjectContentRepository
	logger      logger.Interface
}

func NewDetectBundleOpportunitiesUseCase(
	cartRepo cart.Repository,
	subjectRepo catalog.SubjectRepository,
	contentRepo catalog.SubjectContentRepository,
	logger logger.Interface,
) *DetectBundleOpportunitiesUseCase {
	return &DetectBundleOpportunitiesUseCase{
		cartRepo:    cartRepo,
		subjectRepo: subjectRepo,
		contentRepo: contentRepo,
		logger:      logger,
	}
}

func (uc *DetectBundleOpportunitiesUseCase) Execute(ctx context.Context, user common.UserContext) ([]*dto.BundleOpportunityDTO, error) {
	if err := user.Require(); err != nil {
		return nil, err
	}

	items, err := uc.cartRepo.ListByUser(ctx, user.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list cart items", "error", err, "user_id", user.UserID)
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	subjectIDs := make([]string, 0, len(items))
	seen := make(map[string]struct{})
	for _, it := range items {
		if it.IsBundle() {
			continue
		}
		if _, ok := seen[it.SubjectID()]; ok {
			continue
		}
		seen[it.SubjectID()] = struct{}{}
		subjectIDs = append(subjectIDs, it.SubjectID())
	}
	if len(subjectIDs) == 0 {
		return []*dto.BundleOpportunityDTO{}, nil
	}

	subjects, err := uc.subjectRepo.GetByIDs(ctx, subjectIDs)
	if err != nil {
		uc.logger.Errorw("failed to load subjects", "error", err, "user_id", user.UserID)
		return nil, fmt.Errorf("failed to load subjects: %w", err)
	}

	bundles := make(map[string]cart.BundleOffer, len(subjects))
	for id, s := range subjects {
		if !s.OffersBundle() {
			continue
		}
		price, _ := s.BundlePrice()
		bundles[id] = cart.BundleOffer{SubjectID: id, SubjectTitle: s.Title(), Price: price}
	}

	available, err := uc.contentRepo.AvailableContentTypes(ctx, subjectIDs)
	if err != nil {
		uc.logger.Errorw("failed to load available content types", "error", err, "user_id", user.UserID)
		return nil, fmt.Errorf("failed to load available content types: %w", err)
	}

	opps := cart.DetectBundleOpportunities(items, bundles, available)
	return dto.ToBundleOpportunityDTOList(opps), nil
}
