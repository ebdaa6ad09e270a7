package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/cart/dto"
	"github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type SwapWithBundleCommand struct {
	User      common.UserContext
	SubjectID string
}

type SwapWithBundleResult struct {
	Bundle       *dto.CartItemDTO
	RemovedItems int64
}

type SwapWithBundleUseCase struct {
	cartRepo    cart.Repository
	subjectRepo catalog.SubjectRepository
	txManager   common.TransactionRunner
	logger      logger.Interface
}

func NewSwapWithBundleUseCase(
	cartRepo cart.Repository,
	subjectRepo catalog.SubjectRepository,
	txManager common.TransactionRunner,
	logger logger.Interface,
) *SwapWithBundleUseCase {
	return &SwapWithBundleUseCase{
		cartRepo:    cartRepo,
		subjectRepo: subjectRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute replaces the user's individual lines for a subject with one bundle line.
// The duplicate check, the delete and the insert share one transaction.
func (uc *SwapWithBundleUseCase) Execute(ctx context.Context, cmd SwapWithBundleCommand) (*SwapWithBundleResult, error) {
	if err := cmd.User.Require(); err != nil {
		return nil, err
	}

	subject, err := uc.subjectRepo.GetByID(ctx, cmd.SubjectID)
	if err != nil {
		if errors.Is(err, catalog.ErrSubjectNotFound) {
			return nil, apperrors.NewNotFoundError(msgSubjectNotFound)
		}
		uc.logger.Errorw("failed to get subject", "error", err, "subject_id", cmd.SubjectID)
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	if !subject.IsActive() {
		return nil, apperrors.NewNotFoundError(msgSubjectNotFound)
	}
	if !subject.OffersBundle() {
		return nil, apperrors.NewValidationError(msgBundleUnavailable)
	}
	price, _ := subject.BundlePrice()

	var (
		bundle  *cart.Item
		removed int64
	)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.cartRepo.FindLine(txCtx, cmd.User.UserID, subject.ID(), cart.BundleLine{})
		if err != nil {
			return fmt.Errorf("failed to check bundle line: %w", err)
		}
		if existing != nil {
			return apperrors.NewConflictError(msgBundleInCart)
		}

		removed, err = uc.cartRepo.DeleteIndividualBySubject(txCtx, cmd.User.UserID, subject.ID())
		if err != nil {
			return fmt.Errorf("failed to remove individual lines: %w", err)
		}

		bundle, err = cart.NewItem(cmd.User.UserID, subject.ID(), cart.BundleLine{}, price)
		if err != nil {
			return err
		}
		if err := uc.cartRepo.Create(txCtx, bundle); err != nil {
			if errors.Is(err, cart.ErrBundleAlreadyInCart) {
				return apperrors.NewConflictError(msgBundleInCart)
			}
			return fmt.Errorf("failed to add bundle line: %w", err)
		}
		return nil
	})
	if err != nil {
		if !apperrors.IsAppError(err) {
			uc.logger.Errorw("bundle swap failed", "error", err, "user_id", cmd.User.UserID, "subject_id", subject.ID())
		}
		return nil, err
	}

	uc.logger.Infow("cart lines swapped for bundle",
		"user_id", cmd.User.UserID,
		"subject_id", subject.ID(),
		"removed", removed,
		"bundle_price", price.String())

	return &SwapWithBundleResult{
		Bundle:       dto.ToCartItemDTO(bundle, dto.ItemLabels{SubjectTitle: subject.Title(), SubjectSlug: subject.Slug()}),
		RemovedItems: removed,
	}, nil
}
