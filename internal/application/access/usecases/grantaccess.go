package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/access/dto"
	"github.com/lumen-edu/lumen/internal/domain/access"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type GrantAccessCommand struct {
	UserID        string
	SubjectID     string
	ContentTypeID string
}

type GrantAccessUseCase struct {
	accessRepo      access.Repository
	subjectRepo     catalog.SubjectRepository
	contentTypeRepo catalog.ContentTypeRepository
	logger          logger.Interface
}

func NewGrantAccessUseCase(
	accessRepo access.Repository,
	subjectRepo catalog.SubjectRepository,
	contentTypeRepo catalog.ContentTypeRepository,
	logger logger.Interface,
) *GrantAccessUseCase {
	return &GrantAccessUseCase{
		accessRepo:      accessRepo,
		subjectRepo:     subjectRepo,
		contentTypeRepo: contentTypeRepo,
		logger:          logger,
	}
}

// Execute grants access manually. Granting something already owned is a no-op.
func (uc *GrantAccessUseCase) Execute(ctx context.Context, cmd GrantAccessCommand) (*dto.AccessGrantDTO, error) {
	if cmd.UserID == "" {
		return nil, apperrors.NewValidationError("User ID is required")
	}

	if _, err := uc.subjectRepo.GetByID(ctx, cmd.SubjectID); err != nil {
		if errors.Is(err, catalog.ErrSubjectNotFound) {
			return nil, apperrors.NewNotFoundError("Subject not found")
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	if _, err := uc.contentTypeRepo.GetByID(ctx, cmd.ContentTypeID); err != nil {
		if errors.Is(err, catalog.ErrContentTypeNotFound) {
			return nil, apperrors.NewNotFoundError("Content type not found")
		}
		return nil, fmt.Errorf("failed to get content type: %w", err)
	}

	grant, err := access.NewUserAccess(cmd.UserID, cmd.SubjectID, cmd.ContentTypeID, access.SourceAdmin, nil)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.accessRepo.Grant(ctx, []*access.UserAccess{grant}); err != nil {
		uc.logger.Errorw("failed to grant access", "error", err, "user_id", cmd.UserID, "subject_id", cmd.SubjectID)
		return nil, fmt.Errorf("failed to grant access: %w", err)
	}

	uc.logger.Infow("access granted by admin",
		"user_id", cmd.UserID,
		"subject_id", cmd.SubjectID,
		"content_type_id", cmd.ContentTypeID)

	return dto.ToAccessGrantDTO(grant), nil
}
