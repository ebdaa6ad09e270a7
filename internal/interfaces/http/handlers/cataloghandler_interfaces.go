package handlers

import (
	"context"

	catalogdto "github.com/lumen-edu/lumen/internal/application/catalog/dto"
	"github.com/lumen-edu/lumen/internal/application/catalog/usecases"
)

// Use case interfaces for CatalogHandler

type listSubjectsUseCase interface {
	Execute(ctx context.Context, query usecases.ListSubjectsQuery) (*usecases.ListSubjectsResult, error)
}

type getSubjectUseCase interface {
	Execute(ctx context.Context, slug string) (*catalogdto.SubjectDetailDTO, error)
}

type listContentTypesUseCase interface {
	Execute(ctx context.Context, includeInactive bool) ([]*catalogdto.ContentTypeDTO, error)
}
