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

// SubjectRepositoryImpl implements catalog.SubjectRepository
type SubjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.CatalogMapper
	logger logger.Interface
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(gdb *gorm.DB, logger logger.Interface) catalog.SubjectRepository {
	return &SubjectRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

// Create creates a new subject
func (r *SubjectRepositoryImpl) Create(ctx context.Context, subject *catalog.Subject) error {
	model, err := r.mapper.SubjectToModel(subject)
	if err != nil {
		return fmt.Errorf("failed to map subject: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subject", "slug", model.Slug, "error", err)
		return fmt.Errorf("failed to create subject: %w", err)
	}

	r.logger.Infow("subject created", "id", model.ID, "slug", model.Slug)
	return nil
}

// Update persists every mutable column of the subject
func (r *SubjectRepositoryImpl) Update(ctx context.Context, subject *catalog.Subject) error {
	model, err := r.mapper.SubjectToModel(subject)
	if err != nil {
		return fmt.Errorf("failed to map subject: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.SubjectModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":             model.Title,
			"description":       model.Description,
			"bundle_price":      model.BundlePrice,
			"is_bundle_enabled": model.IsBundleEnabled,
			"is_active":         model.IsActive,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subject", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subject: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrSubjectNotFound
	}

	return nil
}

// GetByID retrieves a subject by ID
func (r *SubjectRepositoryImpl) GetByID(ctx context.Context, id string) (*catalog.Subject, error) {
	return r.first(ctx, "id = ?", id)
}

// GetBySlug retrieves a subject by slug
func (r *SubjectRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*catalog.Subject, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *SubjectRepositoryImpl) first(ctx context.Context, query string, arg string) (*catalog.Subject, error) {
	var model models.SubjectModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrSubjectNotFound
		}
		r.logger.Errorw("failed to get subject", "lookup", arg, "error", err)
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	return r.mapper.SubjectToDomain(&model)
}

// GetByIDs retrieves subjects in a single query, keyed by ID. Unknown IDs are absent.
func (r *SubjectRepositoryImpl) GetByIDs(ctx context.Context, ids []string) (map[string]*catalog.Subject, error) {
	result := make(map[string]*catalog.Subject, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var modelList []*models.SubjectModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get subjects by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get subjects: %w", err)
	}

	subjects, err := r.mapper.SubjectsToDomain(modelList)
	if err != nil {
		return nil, err
	}
	for _, s := range subjects {
		result[s.ID()] = s
	}
	return result, nil
}

// ExistsBySlug checks whether a subject already uses the slug
func (r *SubjectRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.SubjectModel{}).
		Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check subject slug: %w", err)
	}
	return count > 0, nil
}

// List returns a page of subjects ordered by title together with the total count
func (r *SubjectRepositoryImpl) List(ctx context.Context, filter catalog.SubjectFilter) ([]*catalog.Subject, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.SubjectModel{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subjects", "error", err)
		return nil, 0, fmt.Errorf("failed to count subjects: %w", err)
	}

	var modelList []*models.SubjectModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("title ASC, id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list subjects", "error", err)
		return nil, 0, fmt.Errorf("failed to list subjects: %w", err)
	}

	subjects, err := r.mapper.SubjectsToDomain(modelList)
	if err != nil {
		return nil, 0, err
	}
	return subjects, total, nil
}
