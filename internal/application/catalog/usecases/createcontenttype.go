package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/catalog/dto"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type CreateContentTypeCommand struct {
	Name      string
	Slug      string
	SortOrder int
}

type CreateContentTypeUseCase struct {
	contentTypeRepo catalog.ContentTypeRepository
	logger          logger.Interface
}

func NewCreateContentTypeUseCase(contentTypeRepo catalog.ContentTypeRepository, logger logger.Interface) *CreateContentTypeUseCase {
	return &CreateContentTypeUseCase{contentTypeRepo: contentTypeRepo, logger: logger}
}

func (uc *CreateContentTypeUseCase) Execute(ctx context.Context, cmd CreateContentTypeCommand) (*dto.ContentTypeDTO, error) {
	ct, err := catalog.NewContentType(cmd.Name, cmd.Slug, cmd.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	exists, err := uc.contentTypeRepo.ExistsBySlug(ctx, ct.Slug())
	if err != nil {
		uc.logger.Errorw("failed to check content type slug", "error", err, "slug", ct.Slug())
		return nil, fmt.Errorf("failed to check content type slug: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("A content type with this slug already exists")
	}

	if err := uc.contentTypeRepo.Create(ctx, ct); err != nil {
		uc.logger.Errorw("failed to create content type", "error", err, "slug", ct.Slug())
		return nil, fmt.Errorf("failed to create content type: %w", err)
	}

	uc.logger.Infow("content type created", "content_type_id", ct.ID(), "slug", ct.Slug())
	return dto.ToContentTypeDTO(ct), nil
}
