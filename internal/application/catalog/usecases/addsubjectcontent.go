package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/catalog/dto"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type AddSubjectContentCommand struct {
	SubjectID     string
	ContentTypeID string
	Title         string
	ResourceURL   string
	SortOrder     int
}

type AddSubjectContentUseCase struct {
	subjectRepo     catalog.SubjectRepository
	contentTypeRepo catalog.ContentTypeRepository
	contentRepo     catalog.SubjectContentRepository
	cache           SubjectDetailCache
	logger          logger.Interface
}

func NewAddSubjectContentUseCase(
	subjectRepo catalog.SubjectRepository,
	contentTypeRepo catalog.ContentTypeRepository,
	contentRepo catalog.SubjectContentRepository,
	cache SubjectDetailCache,
	logger logger.Interface,
) *AddSubjectContentUseCase {
	return &AddSubjectContentUseCase{
		subjectRepo:     subjectRepo,
		contentTypeRepo: contentTypeRepo,
		contentRepo:     contentRepo,
		cache:           cache,
		logger:          logger,
	}
}

func (uc *AddSubjectContentUseCase) Execute(ctx context.Context, cmd AddSubjectContentCommand) (*dto.SubjectContentDTO, error) {
	subject, err := loadSubject(ctx, uc.subjectRepo, cmd.SubjectID)
	if err != nil {
		return nil, err
	}
	ct, err := loadContentType(ctx, uc.contentTypeRepo, cmd.ContentTypeID)
	if err != nil {
		return nil, err
	}

	content, err := catalog.NewSubjectContent(subject.ID(), ct.ID(), cmd.Title, cmd.ResourceURL, cmd.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.contentRepo.Create(ctx, content); err != nil {
		uc.logger.Errorw("failed to add subject content", "error", err, "subject_id", subject.ID())
		return nil, fmt.Errorf("failed to add subject content: %w", err)
	}
	invalidate(ctx, uc.cache, uc.logger, subject.Slug())

	uc.logger.Infow("subject content added", "subject_id", subject.ID(), "content_type_id", ct.ID(), "content_id", content.ID())
	return dto.ToSubjectContentDTO(content), nil
}
