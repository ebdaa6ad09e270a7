package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
	"github.com/lumen-edu/lumen/internal/shared/db"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

// PricingRepositoryImpl implements catalog.PricingRepository
type PricingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.CatalogMapper
	logger logger.Interface
}

// NewPricingRepository creates a new content type pricing repository
func NewPricingRepository(gdb *gorm.DB, logger logger.Interface) catalog.PricingRepository {
	return &PricingRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

// Upsert inserts the price or overwrites the existing row for the same subject and content type
func (r *PricingRepositoryImpl) Upsert(ctx context.Context, pricing *catalog.ContentTypePricing) error {
	model := r.mapper.PricingToModel(pricing)

	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subject_id"}, {Name: "content_type_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert pricing",
			"subject_id", model.SubjectID,
			"content_type_id", model.ContentTypeID,
			"error", err)
		return fmt.Errorf("failed to upsert pricing: %w", err)
	}

	r.logger.Infow("pricing saved",
		"subject_id", model.SubjectID,
		"content_type_id", model.ContentTypeID,
		"price", model.Price.StringFixed(2))
	return nil
}

func (r *PricingRepositoryImpl) Get(ctx context.Context, subjectID, contentTypeID string) (*catalog.ContentTypePricing, error) {
	var model models.SubjectContentTypePricingModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("subject_id = ? AND content_type_id = ?", subjectID, contentTypeID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrPricingNotFound
		}
		r.logger.Errorw("failed to get pricing",
			"subject_id", subjectID,
			"content_type_id", contentTypeID,
			"error", err)
		return nil, fmt.Errorf("failed to get pricing: %w", err)
	}
	return r.mapper.PricingToDomain(&model), nil
}

func (r *PricingRepositoryImpl) ListBySubject(ctx context.Context, subjectID string) ([]*catalog.ContentTypePricing, error) {
	var modelList []*models.SubjectContentTypePricingModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("subject_id = ?", subjectID).
		Order("content_type_id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list pricing", "subject_id", subjectID, "error", err)
		return nil, fmt.Errorf("failed to list pricing: %w", err)
	}

	pricing := make([]*catalog.ContentTypePricing, 0, len(modelList))
	for _, model := range modelList {
		pricing = append(pricing, r.mapper.PricingToDomain(model))
	}
	return pricing, nil
}
