package admin

import (
	"context"

	offerdto "github.com/lumen-edu/lumen/internal/application/offer/dto"
	"github.com/lumen-edu/lumen/internal/application/offer/usecases"
)

// Use case interfaces for OfferHandler

type createOfferUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateOfferCommand) (*offerdto.OfferDTO, error)
}

type updateOfferUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateOfferCommand) (*offerdto.OfferDTO, error)
}

type setOfferActiveUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetOfferActiveCommand) (*offerdto.OfferDTO, error)
}

type getOfferUseCase interface {
	Execute(ctx context.Context, id string) (*offerdto.OfferDTO, error)
}

type listOffersUseCase interface {
	Execute(ctx context.Context, query usecases.ListOffersQuery) (*usecases.ListOffersResult, error)
}

type deleteOfferUseCase interface {
	Execute(ctx context.Context, id string) error
}
