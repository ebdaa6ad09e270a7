package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/catalog/dto"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type ListContentTypesUseCase struct {
	contentTypeRepo catalog.ContentTypeRepository
	logger          logger.Interface
}

func NewListContentTypesUseCase(contentTypeRepo catalog.ContentTypeRepository, logger logger.Interface) *ListContentTypesUseCase {
	return &ListContentTypesUseCase{contentTypeRepo: contentTypeRepo, logger: logger}
}

func (uc *ListContentTypesUseCase) Execute(ctx context.Context, includeInactive bool) ([]*dto.ContentTypeDTO, error) {
	types, err := uc.contentTypeRepo.List(ctx, !includeInactive)
	if err != nil {
		uc.logger.Errorw("failed to list content types", "error", err)
		return nil, fmt.Errorf("failed to list content types: %w", err)
	}
	return dto.ToContentTypeDTOList(types), nil
}
