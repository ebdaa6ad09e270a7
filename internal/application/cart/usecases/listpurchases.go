package usecases

import (
	"context"
	"fmt"

	"github.com/lumen-edu/lumen/internal/application/cart/dto"
	"github.com/lumen-edu/lumen/internal/application/common"
	"github.com/lumen-edu/lumen/internal/domain/purchase"
	"github.com/lumen-edu/lumen/internal/shared/logger"
	"github.com/lumen-edu/lumen/internal/shared/utils"
)

type ListPurchasesQuery struct {
	User     common.UserContext
	Page     int
	PageSize int
}

type ListPurchasesResult struct {
	Purchases []*dto.PurchaseDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListPurchasesUseCase struct {
	purchaseRepo purchase.Repository
	logger       logger.Interface
}

func NewListPurchasesUseCase(purchaseRepo purchase.Repository, logger logger.Interface) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{purchaseRepo: purchaseRepo, logger: logger}
}

func (uc *ListPurchasesUseCase) Execute(ctx context.Context, query ListPurchasesQuery) (*ListPurchasesResult, error) {
	if err := query.User.Require(); err != nil {
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	purchases, total, err := uc.purchaseRepo.ListByUser(ctx, query.User.UserID, p.Page, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list purchases", "error", err, "user_id", query.User.UserID)
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	return &ListPurchasesResult{
		Purchases: dto.ToPurchaseDTOList(purchases),
		Total:     total,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}, nil
}
