package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type RemoveFromCartCommand struct {
	User      common.UserContext
	SubjectID string
	Line      cart.Line
}

type RemoveFromCartUseCase struct {
	cartRepo cart.Repository
	logger   logger.Interface
}

func NewRemoveFromCartUseCase(cartRepo cart.Repository, logger logger.Interface) *RemoveFromCartUseCase {
	return &RemoveFromCartUseCase{cartRepo: cartRepo, logger: logger}
}

func (uc *RemoveFromCartUseCase) Execute(ctx context.Context, cmd RemoveFromCartCommand) error {
	if err := cmd.User.Require(); err != nil {
		return err
	}
	if cmd.Line == nil {
		return apperrors.NewValidationError(msgInvalidLine)
	}

	removed, err := uc.cartRepo.DeleteLine(ctx, cmd.User.UserID, cmd.SubjectID, cmd.Line)
	if err != nil {
		uc.logger.Errorw("failed to remove cart line", "error", err, "user_id", cmd.User.UserID, "subject_id", cmd.SubjectID)
		return fmt.Errorf("failed to remove cart line: %w", err)
	}
	if removed == 0 {
		return apperrors.NewNotFoundError(msgItemNotFound)
	}

	uc.logger.Infow("cart line removed", "user_id", cmd.User.UserID, "subject_id", cmd.SubjectID, "line", cmd.Line.Kind())
	return nil
}

type RemoveFromCartByItemCommand struct {
	User   common.UserContext
	ItemID string
}

type RemoveFromCartByItemUseCase struct {
	cartRepo cart.Repository
	logger   logger.Interface
}

func NewRemoveFromCartByItemUseCase(cartRepo cart.Repository, logger logger.Interface) *RemoveFromCartByItemUseCase {
	return &RemoveFromCartByItemUseCase{cartRepo: cartRepo, logger: logger}
}

// Execute deletes one item. An item belonging to another user is reported as not found.
func (uc *RemoveFromCartByItemUseCase) Execute(ctx context.Context, cmd RemoveFromCartByItemCommand) error {
	if err := cmd.User.Require(); err != nil {
		return err
	}

	removed, err := uc.cartRepo.DeleteByID(ctx, cmd.User.UserID, cmd.ItemID)
	if err != nil {
		uc.logger.Errorw("failed to remove cart item", "error", err, "user_id", cmd.User.UserID, "item_id", cmd.ItemID)
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if removed == 0 {
		return apperrors.NewNotFoundError(msgItemNotFound)
	}

	uc.logger.Infow("cart item removed", "user_id", cmd.User.UserID, "item_id", cmd.ItemID)
	return nil
}
