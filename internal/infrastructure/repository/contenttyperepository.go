package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
	"github.com/lumen-edu/lumen/internal/shared/db"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

// ContentTypeRepositoryImpl implements catalog.ContentTypeRepository
type ContentTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.CatalogMapper
	logger logger.Interface
}

// NewContentTypeRepository creates a new content type repository
func NewContentTypeRepository(gdb *gorm.DB, logger logger.Interface) catalog.ContentTypeRepository {
	return &ContentTypeRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

func (r *ContentTypeRepositoryImpl) Create(ctx context.Context, contentType *catalog.ContentType) error {
	model := r.mapper.ContentTypeToModel(contentType)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create content type", "slug", model.Slug, "error", err)
		return fmt.Errorf("failed to create content type: %w", err)
	}
	r.logger.Infow("content type created", "id", model.ID, "slug", model.Slug)
	return nil
}

func (r *ContentTypeRepositoryImpl) GetByID(ctx context.Context, id string) (*catalog.ContentType, error) {
	var model models.ContentTypeModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrContentTypeNotFound
		}
		r.logger.Errorw("failed to get content type", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get content type: %w", err)
	}
	return r.mapper.ContentTypeToDomain(&model), nil
}

func (r *ContentTypeRepositoryImpl) GetByIDs(ctx context.Context, ids []string) (map[string]*catalog.ContentType, error) {
	result := make(map[string]*catalog.ContentType, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var modelList []*models.ContentTypeModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get content types by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get content types: %w", err)
	}
	for _, model := range modelList {
		result[model.ID] = r.mapper.ContentTypeToDomain(model)
	}
	return result, nil
}

func (r *ContentTypeRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ContentTypeModel{}).
		Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check content type slug: %w", err)
	}
	return count > 0, nil
}

// List returns content types by sort order, then name
func (r *ContentTypeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*catalog.ContentType, error) {
	query := db.GetTxFromContext(ctx, r.db)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var modelList []*models.ContentTypeModel
	if err := query.Order("sort_order ASC, name ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list content types", "error", err)
		return nil, fmt.Errorf("failed to list content types: %w", err)
	}

	types := make([]*catalog.ContentType, 0, len(modelList))
	for _, model := range modelList {
		types = append(types, r.mapper.ContentTypeToDomain(model))
	}
	return types, nil
}
