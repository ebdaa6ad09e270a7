package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type ClearCartUseCase struct {
	cartRepo cart.Repository
	logger   logger.Interface
}

func NewClearCartUseCase(cartRepo cart.Repository, logger logger.Interface) *ClearCartUseCase {
	return &ClearCartUseCase{cartRepo: cartRepo, logger: logger}
}

// Execute empties the user's cart. Clearing an empty cart succeeds.
func (uc *ClearCartUseCase) Execute(ctx context.Context, user common.UserContext) error {
	if err := user.Require(); err != nil {
		return err
	}

	removed, err := uc.cartRepo.DeleteByUser(ctx, user.UserID)
	if err != nil {
		uc.logger.Errorw("failed to clear cart", "error", err, "user_id", user.UserID)
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	uc.logger.Infow("cart cleared", "user_id", user.UserID, "removed", removed)
	return nil
}
