package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lumen-edu/lumen/internal/domain/purchase"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
	"github.com/lumen-edu/lumen/internal/shared/db"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

// PurchaseRepositoryImpl implements purchase.Repository
type PurchaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.PurchaseMapper
	logger logger.Interface
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(gdb *gorm.DB, logger logger.Interface) purchase.Repository {
	return &PurchaseRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewPurchaseMapper(),
		logger: logger,
	}
}

// Create records a purchase
func (r *PurchaseRepositoryImpl) Create(ctx context.Context, p *purchase.Purchase) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to map purchase: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return purchase.ErrPaymentAlreadyRecorded
		}
		r.logger.Errorw("failed to create purchase",
			"user_id", model.UserID,
			"payment_reference", model.PaymentReference,
			"error", err)
		return fmt.Errorf("failed to create purchase: %w", err)
	}

	r.logger.Infow("purchase recorded",
		"id", model.ID,
		"user_id", model.UserID,
		"total", model.Total.StringFixed(2),
		"currency", model.Currency)
	return nil
}

// ListByUser returns a page of the user's purchases, newest first
func (r *PurchaseRepositoryImpl) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]*purchase.Purchase, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PurchaseModel{}).Scopes(db.OwnedBy(userID))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count purchases", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	var modelList []*models.PurchaseModel
	if err := query.Scopes(db.Paginate(page, pageSize)).
		Order("created_at DESC, id DESC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list purchases", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to list purchases: %w", err)
	}

	purchases, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return purchases, total, nil
}
