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

type GetSubjectUseCase struct {
	subjectRepo     catalog.SubjectRepository
	contentTypeRepo catalog.ContentTypeRepository
	contentRepo     catalog.SubjectContentRepository
	pricingRepo     catalog.PricingRepository
	renderer        MarkdownRenderer
	cache           SubjectDetailCache
	logger          logger.Interface
}

func NewGetSubjectUseCase(
	subjectRepo catalog.SubjectRepository,
	contentTypeRepo catalog.ContentTypeRepository,
	contentRepo catalog.SubjectContentRepository,
	pricingRepo catalog.PricingRepository,
	renderer MarkdownRenderer,
	cache SubjectDetailCache,
	logger logger.Interface,
) *GetSubjectUseCase {
	return &GetSubjectUseCase{
		subjectRepo:     subjectRepo,
		contentTypeRepo: contentTypeRepo,
		contentRepo:     contentRepo,
		pricingRepo:     pricingRepo,
		renderer:        renderer,
		cache:           cache,
		logger:          logger,
	}
}

// Execute returns the public detail view of an active subject.
func (uc *GetSubjectUseCase) Execute(ctx context.Context, slug string) (*dto.SubjectDetailDTO, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, slug)
		if err != nil {
			uc.logger.Warnw("subject cache read failed", "error", err, "slug", slug)
		} else if cached != nil {
			return cached, nil
		}
	}

	subject, err := uc.subjectRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, catalog.ErrSubjectNotFound) {
			return nil, apperrors.NewNotFoundError(msgSubjectNotFound)
		}
		uc.logger.Errorw("failed to get subject", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	if !subject.IsActive() {
		return nil, apperrors.NewNotFoundError(msgSubjectNotFound)
	}

	detail, err := uc.buildDetail(ctx, subject)
	if err != nil {
		uc.logger.Errorw("failed to build subject detail", "error", err, "subject_id", subject.ID())
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, slug, detail); err != nil {
			uc.logger.Warnw("subject cache write failed", "error", err, "slug", slug)
		}
	}
	return detail, nil
}

func (uc *GetSubjectUseCase) buildDetail(ctx context.Context, subject *catalog.Subject) (*dto.SubjectDetailDTO, error) {
	html, err := uc.renderer.Render(subject.Description())
	if err != nil {
		return nil, fmt.Errorf("failed to render description: %w", err)
	}

	contents, err := uc.contentRepo.ListBySubject(ctx, subject.ID(), true)
	if err != nil {
		return nil, fmt.Errorf("failed to list contents: %w", err)
	}
	pricings, err := uc.pricingRepo.ListBySubject(ctx, subject.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing: %w", err)
	}
	types, err := uc.contentTypeRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list content types: %w", err)
	}
	available, err := uc.contentRepo.AvailableContentTypes(ctx, []string{subject.ID()})
	if err != nil {
		return nil, fmt.Errorf("failed to load available content types: %w", err)
	}

	names := make(map[string]string, len(types))
	for _, ct := range types {
		names[ct.ID()] = ct.Name()
	}

	detail := &dto.SubjectDetailDTO{
		SubjectDTO:      *dto.ToSubjectDTO(subject),
		DescriptionHTML: html,
		Contents:        make([]*dto.SubjectContentDTO, 0, len(contents)),
		Pricing:         make([]*dto.ContentTypePriceDTO, 0, len(pricings)),
	}
	for _, c := range contents {
		if _, ok := names[c.ContentTypeID()]; !ok {
			continue
		}
		detail.Contents = append(detail.Contents, dto.ToSubjectContentDTO(c))
	}

	prices := make(map[string]decimal.Decimal, len(pricings))
	for _, p := range pricings {
		name, ok := names[p.ContentTypeID()]
		if !ok {
			continue
		}
		prices[p.ContentTypeID()] = p.Price()
		detail.Pricing = append(detail.Pricing, dto.ToContentTypePriceDTO(p, name))
	}

	if subject.OffersBundle() {
		bundlePrice, _ := subject.BundlePrice()
		typeIDs := available[subject.ID()]
		individual := decimal.Zero
		for _, id := range typeIDs {
			individual = individual.Add(prices[id])
		}
		detail.Bundle = dto.NewBundleSummaryDTO(bundlePrice, individual, typeIDs)
	}

	return detail, nil
}
