package handlers

import (
	"context"

	accessdto "github.com/lumen-edu/lumen/internal/application/access/dto"
	"github.com/lumen-edu/lumen/internal/application/cart/usecases"
	appcommon "github.com/lumen-edu/lumen/internal/application/common"
)

// Use case interfaces for LibraryHandler

type listLibraryUseCase interface {
	Execute(ctx context.Context, user appcommon.UserContext) ([]*accessdto.LibraryEntryDTO, error)
}

type listPurchasesUseCase interface {
	Execute(ctx context.Context, query usecases.ListPurchasesQuery) (*usecases.ListPurchasesResult, error)
}
