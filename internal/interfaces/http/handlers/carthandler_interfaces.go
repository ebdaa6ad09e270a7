package handlers

import (
	"context"

	cartdto "github.com/lumen-edu/lumen/internal/application/cart/dto"
	"github.com/lumen-edu/lumen/internal/application/cart/usecases"
	appcommon "github.com/lumen-edu/lumen/internal/application/common"
)

// Use case interfaces for CartHandler

type addToCartUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddToCartCommand) (*cartdto.CartItemDTO, error)
}

type removeFromCartUseCase interface {
	Execute(ctx context.Context, cmd usecases.RemoveFromCartCommand) error
}

type removeFromCartByItemUseCase interface {
	Execute(ctx context.Context, cmd usecases.RemoveFromCartByItemCommand) error
}

type clearCartUseCase interface {
	Execute(ctx context.Context, user appcommon.UserContext) error
}

type getCartUseCase interface {
	Execute(ctx context.Context, user appcommon.UserContext) (*cartdto.CartDTO, error)
}

type detectBundleOpportunitiesUseCase interface {
	Execute(ctx context.Context, user appcommon.UserContext) ([]*cartdto.BundleOpportunityDTO, error)
}

type swapWithBundleUseCase interface {
	Execute(ctx context.Context, cmd usecases.SwapWithBundleCommand) (*usecases.SwapWithBundleResult, error)
}

type applyOfferCodeUseCase interface {
	Execute(ctx context.Context, cmd usecases.ApplyOfferCodeCommand) (*cartdto.OfferApplicationDTO, error)
}

type checkoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.CheckoutCommand) (*cartdto.PurchaseDTO, error)
}
