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

// UpdateSubjectCommand is a partial update; nil fields are left unchanged.
type UpdateSubjectCommand struct {
	ID               string
	Title            *string
	Description      *string
	BundlePrice      *decimal.Decimal
	ClearBundlePrice bool
	BundleEnabled    *bool
	Active           *bool
}

type UpdateSubjectUseCase struct {
	subjectRepo catalog.SubjectRepository
	cache       SubjectDetailCache
	logger      logger.Interface
}

func NewUpdateSubjectUseCase(subjectRepo catalog.SubjectRepository, cache SubjectDetailCache, logger logger.Interface) *UpdateSubjectUseCase {
	return &UpdateSubjectUseCase{subjectRepo: subjectRepo, cache: cache, logger: logger}
}

func (uc *UpdateSubjectUseCase) Execute(ctx context.Context, cmd UpdateSubjectCommand) (*dto.SubjectDTO, error) {
	subject, err := loadSubject(ctx, uc.subjectRepo, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil || cmd.Description != nil {
		title, description := subject.Title(), subject.Description()
		if cmd.Title != nil {
			title = *cmd.Title
		}
		if cmd.Description != nil {
			description = *cmd.Description
		}
		if err := subject.UpdateDetails(title, description); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if cmd.BundlePrice != nil || cmd.ClearBundlePrice || cmd.BundleEnabled != nil {
		var price *decimal.Decimal
		if current, ok := subject.BundlePrice(); ok {
			price = &current
		}
		if cmd.ClearBundlePrice {
			price = nil
		}
		if cmd.BundlePrice != nil {
			price = cmd.BundlePrice
		}
		enabled := subject.BundleEnabled()
		if cmd.BundleEnabled != nil {
			enabled = *cmd.BundleEnabled
		}
		if price == nil && cmd.BundleEnabled == nil {
			enabled = false
		}
		if err := subject.SetBundlePricing(price, enabled); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if cmd.Active != nil {
		if *cmd.Active {
			subject.Activate()
		} else {
			subject.Deactivate()
		}
	}

	if err := uc.subjectRepo.Update(ctx, subject); err != nil {
		uc.logger.Errorw("failed to update subject", "error", err, "subject_id", subject.ID())
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}
	invalidate(ctx, uc.cache, uc.logger, subject.Slug())

	uc.logger.Infow("subject updated", "subject_id", subject.ID())
	return dto.ToSubjectDTO(subject), nil
}
