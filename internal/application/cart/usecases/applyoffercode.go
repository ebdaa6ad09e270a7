package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/cart/dto"
	"github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/shared/biztime"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type ApplyOfferCodeCommand struct {
	User common.UserContext
	Code string
}

// ApplyOfferCodeUseCase previews an offer against the current cart. It never changes usage;
// redemption happens at checkout.
type ApplyOfferCodeUseCase struct {
	cartRepo  cart.Repository
	offerRepo offer.Repository
	logger    logger.Interface
}

func NewApplyOfferCodeUseCase(cartRepo cart.Repository, offerRepo offer.Repository, logger logger.Interface) *ApplyOfferCodeUseCase {
	return &ApplyOfferCodeUseCase{cartRepo: cartRepo, offerRepo: offerRepo, logger: logger}
}

func (uc *ApplyOfferCodeUseCase) Execute(ctx context.Context, cmd ApplyOfferCodeCommand) (*dto.OfferApplicationDTO, error) {
	if err := cmd.User.Require(); err != nil {
		return nil, err
	}

	o, err := loadRedeemableOffer(ctx, uc.offerRepo, cmd.Code, biztime.NowUTC())
	if err != nil {
		if !apperrors.IsAppError(err) {
			uc.logger.Errorw("failed to load offer", "error", err, "code", cmd.Code)
			return nil, fmt.Errorf("failed to load offer: %w", err)
		}
		return nil, err
	}

	items, err := uc.cartRepo.ListByUser(ctx, cmd.User.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list cart items", "error", err, "user_id", cmd.User.UserID)
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	if len(items) == 0 {
		return nil, apperrors.NewValidationError(msgCartEmpty)
	}

	ev, err := o.Evaluate(toOfferLines(items))
	if err != nil {
		return nil, offerRuleError(err)
	}

	uc.logger.Infow("offer evaluated",
		"user_id", cmd.User.UserID,
		"code", o.Code(),
		"discount", ev.Discount.String(),
		"applicable_items", ev.ApplicableItems)

	return dto.ToOfferApplicationDTO(o, ev, msgOfferApplied), nil
}
