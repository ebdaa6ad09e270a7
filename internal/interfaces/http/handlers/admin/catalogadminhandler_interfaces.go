package admin

import (
	"context"

	catalogdto "github.com/lumen-edu/lumen/internal/application/catalog/dto"
	"github.com/lumen-edu/lumen/internal/application/catalog/usecases"
)

// Use case interfaces for CatalogAdminHandler

type listSubjectsUseCase interface {
	Execute(ctx context.Context, query usecases.ListSubjectsQuery) (*usecases.ListSubjectsResult, error)
}

type createSubjectUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSubjectCommand) (*catalogdto.SubjectDTO, error)
}

type updateSubjectUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSubjectCommand) (*catalogdto.SubjectDTO, error)
}

type setContentTypePricingUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetContentTypePricingCommand) (*catalogdto.ContentTypePriceDTO, error)
}

type addSubjectContentUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddSubjectContentCommand) (*catalogdto.SubjectContentDTO, error)
}

type listContentTypesUseCase interface {
	Execute(ctx context.Context, includeInactive bool) ([]*catalogdto.ContentTypeDTO, error)
}

type createContentTypeUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateContentTypeCommand) (*catalogdto.ContentTypeDTO, error)
}
