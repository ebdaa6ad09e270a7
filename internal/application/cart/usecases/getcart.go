package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/cart/dto"
	"github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

type GetCartUseCase struct {
	cartRepo cart.Repository
	labels   labelResolver
	currency string
	logger   logger.Interface
}

func NewGetCartUseCase(
	cartRepo cart.Repository,
	subjectRepo catalog.SubjectRepository,
	contentTypeRepo catalog.ContentTypeRepository,
	currency string,
	logger logger.Interface,
) *GetCartUseCase {
	return &GetCartUseCase{
		cartRepo: cartRepo,
		labels:   labelResolver{subjectRepo: subjectRepo, contentTypeRepo: contentTypeRepo},
		currency: currency,
		logger:   logger,
	}
}

func (uc *GetCartUseCase) Execute(ctx context.Context, user common.UserContext) (*dto.CartDTO, error) {
	if err := user.Require(); err != nil {
		return nil, err
	}

	items, err := uc.cartRepo.ListByUser(ctx, user.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list cart items", "error", err, "user_id", user.UserID)
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	labels, err := uc.labels.resolve(ctx, items)
	if err != nil {
		uc.logger.Errorw("failed to resolve cart labels", "error", err, "user_id", user.UserID)
		return nil, err
	}

	return dto.ToCartDTO(items, labels, uc.currency), nil
}
