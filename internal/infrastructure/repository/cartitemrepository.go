package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lumen-edu/lumen/internal/domain/cart"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
	"github.com/lumen-edu/lumen/internal/shared/db"
	apperrors "github.com/lumen-edu/lumen/internal/shared/errors"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

// CartItemRepositoryImpl implements cart.Repository
type CartItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.CartItemMapper
	logger logger.Interface
}

// NewCartItemRepository creates a new cart item repository
func NewCartItemRepository(gdb *gorm.DB, logger logger.Interface) cart.Repository {
	return &CartItemRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewCartItemMapper(),
		logger: logger,
	}
}

// Create inserts a cart line. The unique (user, subject, line_key) index turns a concurrent
// duplicate into cart.ErrItemAlreadyInCart.
func (r *CartItemRepositoryImpl) Create(ctx context.Context, item *cart.Item) error {
	model, err := r.mapper.ToModel(item)
	if err != nil {
		return fmt.Errorf("failed to map cart item: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			if model.IsBundle {
				return cart.ErrBundleAlreadyInCart
			}
			return cart.ErrItemAlreadyInCart
		}
		r.logger.Errorw("failed to create cart item",
			"user_id", model.UserID,
			"subject_id", model.SubjectID,
			"line_key", model.LineKey,
			"error", err)
		return fmt.Errorf("failed to create cart item: %w", err)
	}

	return nil
}

func (r *CartItemRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*cart.Item, error) {
	var modelList []*models.CartItemModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list cart items", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return r.mapper.ToDomainList(modelList)
}

func (r *CartItemRepositoryImpl) FindLine(ctx context.Context, userID, subjectID string, line cart.Line) (*cart.Item, error) {
	var model models.CartItemModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Where("subject_id = ? AND line_key = ?", subjectID, mappers.LineKey(line)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find cart line", "user_id", userID, "subject_id", subjectID, "error", err)
		return nil, fmt.Errorf("failed to find cart line: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *CartItemRepositoryImpl) DeleteByID(ctx context.Context, userID, itemID string) (int64, error) {
	return r.delete(ctx, userID, "id = ?", itemID)
}

func (r *CartItemRepositoryImpl) DeleteLine(ctx context.Context, userID, subjectID string, line cart.Line) (int64, error) {
	return r.delete(ctx, userID, "subject_id = ? AND line_key = ?", subjectID, mappers.LineKey(line))
}

// DeleteIndividualBySubject removes every non-bundle line of one subject
func (r *CartItemRepositoryImpl) DeleteIndividualBySubject(ctx context.Context, userID, subjectID string) (int64, error) {
	return r.delete(ctx, userID, "subject_id = ? AND is_bundle = ?", subjectID, false)
}

func (r *CartItemRepositoryImpl) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	return r.delete(ctx, userID, "1 = 1")
}

func (r *CartItemRepositoryImpl) delete(ctx context.Context, userID string, query string, args ...interface{}) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Where(query, args...).
		Delete(&models.CartItemModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete cart items", "user_id", userID, "filter", query, "error", result.Error)
		return 0, fmt.Errorf("failed to delete cart items: %w", result.Error)
	}
	return result.RowsAffected, nil
}
