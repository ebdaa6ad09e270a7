package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lumen-edu/lumen/internal/application/catalog/dto"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type CreateSubjectCommand struct {
	Title         string
	Slug          string
	Description   string
	BundlePrice   *decimal.Decimal
	BundleEnabled bool
}

type CreateSubjectUseCase struct {
	subjectRepo catalog.SubjectRepository
	logger      logger.Interface
}

func NewCreateSubjectUseCase(subjectRepo catalog.SubjectRepository, logger logger.Interface) *CreateSubjectUseCase {
	return &CreateSubjectUseCase{subjectRepo: subjectRepo, logger: logger}
}

func (uc *CreateSubjectUseCase) Execute(ctx context.Context, cmd CreateSubjectCommand) (*dto.SubjectDTO, error) {
	subject, err := catalog.NewSubject(cmd.Title, cmd.Slug, cmd.Description)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if cmd.BundlePrice != nil || cmd.BundleEnabled {
		if err := subject.SetBundlePricing(cmd.BundlePrice, cmd.BundleEnabled); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	exists, err := uc.subjectRepo.ExistsBySlug(ctx, subject.Slug())
	if err != nil {
		uc.logger.Errorw("failed to check subject slug", "error", err, "slug", subject.Slug())
		return nil, fmt.Errorf("failed to check subject slug: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("A subject with this slug already exists")
	}

	if err := uc.subjectRepo.Create(ctx, subject); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("A subject with this slug already exists")
		}
		uc.logger.Errorw("failed to create subject", "error", err, "slug", subject.Slug())
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}

	uc.logger.Infow("subject created", "subject_id", subject.ID(), "slug", subject.Slug())
	return dto.ToSubjectDTO(subject), nil
}
