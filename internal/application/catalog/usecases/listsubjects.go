package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/catalog/dto"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/shared/logger"
	"github.com/lumen-edu/lumen/internal/shared/utils"
)

type ListSubjectsQuery struct {
	// IncludeInactive is only honoured for admin listings.
	IncludeInactive bool
	Page            int
	PageSize        int
}

type ListSubjectsResult struct {
	Subjects []*dto.SubjectDTO
	Total    int64
	Page     int
	PageSize int
}

type ListSubjectsUseCase struct {
	subjectRepo catalog.SubjectRepository
	logger      logger.Interface
}

func NewListSubjectsUseCase(subjectRepo catalog.SubjectRepository, logger logger.Interface) *ListSubjectsUseCase {
	return &ListSubjectsUseCase{subjectRepo: subjectRepo, logger: logger}
}

func (uc *ListSubjectsUseCase) Execute(ctx context.Context, query ListSubjectsQuery) (*ListSubjectsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	subjects, total, err := uc.subjectRepo.List(ctx, catalog.SubjectFilter{
		ActiveOnly: !query.IncludeInactive,
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list subjects", "error", err)
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	return &ListSubjectsResult{
		Subjects: dto.ToSubjectDTOList(subjects),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
