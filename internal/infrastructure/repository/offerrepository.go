package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lumen-edu/lumen/internal/domain/offer"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
	"github.com/lumen-edu/lumen/internal/shared/db"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

// OfferRepositoryImpl implements offer.Repository
type OfferRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.OfferMapper
	logger logger.Interface
}

// NewOfferRepository creates a new offer repository
func NewOfferRepository(gdb *gorm.DB, logger logger.Interface) offer.Repository {
	return &OfferRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewOfferMapper(),
		logger: logger,
	}
}

// Create creates a new offer
func (r *OfferRepositoryImpl) Create(ctx context.Context, o *offer.Offer) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return fmt.Errorf("failed to map offer: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return offer.ErrCodeExists
		}
		r.logger.Errorw("failed to create offer", "code", model.Code, "error", err)
		return fmt.Errorf("failed to create offer: %w", err)
	}

	r.logger.Infow("offer created", "id", model.ID, "code", model.Code)
	return nil
}

// Update writes the offer terms and active flag. The usage counter is only ever changed
// through IncrementUsage.
func (r *OfferRepositoryImpl) Update(ctx context.Context, o *offer.Offer) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return fmt.Errorf("failed to map offer: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.OfferModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"description":     model.Description,
			"discount_type":   model.DiscountType,
			"discount_value":  model.DiscountValue,
			"subject_id":      model.SubjectID,
			"content_type_id": model.ContentTypeID,
			"valid_from":      model.ValidFrom,
			"valid_until":     model.ValidUntil,
			"max_usage":       model.MaxUsage,
			"is_active":       model.IsActive,
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update offer", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update offer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return offer.ErrOfferNotFound
	}

	r.logger.Infow("offer updated", "id", model.ID, "code", model.Code)
	return nil
}

// Delete removes an offer. Purchases keep the code as plain text.
func (r *OfferRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.OfferModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete offer", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete offer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return offer.ErrOfferNotFound
	}

	r.logger.Infow("offer deleted", "id", id)
	return nil
}

func (r *OfferRepositoryImpl) GetByID(ctx context.Context, id string) (*offer.Offer, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByCode expects an already normalised code
func (r *OfferRepositoryImpl) GetByCode(ctx context.Context, code string) (*offer.Offer, error) {
	return r.first(ctx, "code = ?", code)
}

func (r *OfferRepositoryImpl) first(ctx context.Context, query string, arg string) (*offer.Offer, error) {
	var model models.OfferModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, offer.ErrOfferNotFound
		}
		r.logger.Errorw("failed to get offer", "lookup", arg, "error", err)
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *OfferRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.OfferModel{}).
		Where("code = ?", code).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check offer code: %w", err)
	}
	return count > 0, nil
}

// List returns a page of offers, newest first
func (r *OfferRepositoryImpl) List(ctx context.Context, filter offer.ListFilter) ([]*offer.Offer, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.OfferModel{})
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count offers", "error", err)
		return nil, 0, fmt.Errorf("failed to count offers: %w", err)
	}

	var modelList []*models.OfferModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("created_at DESC, id DESC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list offers", "error", err)
		return nil, 0, fmt.Errorf("failed to list offers: %w", err)
	}

	offers, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}

// IncrementUsage bumps current_usage in a single guarded UPDATE so concurrent checkouts
// can never push an offer past max_usage.
func (r *OfferRepositoryImpl) IncrementUsage(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.OfferModel{}).
		Where("id = ? AND (max_usage IS NULL OR current_usage < max_usage)", id).
		UpdateColumns(map[string]interface{}{
			"current_usage": gorm.Expr("current_usage + ?", 1),
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to increment offer usage", "id", id, "error", result.Error)
		return fmt.Errorf("failed to increment offer usage: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.OfferModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check offer: %w", err)
	}
	if count == 0 {
		return offer.ErrOfferNotFound
	}
	return offer.ErrUsageExhausted
}
