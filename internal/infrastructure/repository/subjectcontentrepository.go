package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lumen-edu/lumen/internal/domain/catalog"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
	"github.com/lumen-edu/lumen/internal/shared/db"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

// SubjectContentRepositoryImpl implements catalog.SubjectContentRepository
type SubjectContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.CatalogMapper
	logger logger.Interface
}

// NewSubjectContentRepository creates a new subject content repository
func NewSubjectContentRepository(gdb *gorm.DB, logger logger.Interface) catalog.SubjectContentRepository {
	return &SubjectContentRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

func (r *SubjectContentRepositoryImpl) Create(ctx context.Context, content *catalog.SubjectContent) error {
	model := r.mapper.ContentToModel(content)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subject content",
			"subject_id", model.SubjectID,
			"content_type_id", model.ContentTypeID,
			"error", err)
		return fmt.Errorf("failed to create subject content: %w", err)
	}
	return nil
}

func (r *SubjectContentRepositoryImpl) ListBySubject(ctx context.Context, subjectID string, activeOnly bool) ([]*catalog.SubjectContent, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("subject_id = ?", subjectID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var modelList []*models.SubjectContentModel
	if err := query.Order("sort_order ASC, created_at ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list subject contents", "subject_id", subjectID, "error", err)
		return nil, fmt.Errorf("failed to list subject contents: %w", err)
	}

	contents := make([]*catalog.SubjectContent, 0, len(modelList))
	for _, model := range modelList {
		contents = append(contents, r.mapper.ContentToDomain(model))
	}
	return contents, nil
}

type availableTypeRow struct {
	SubjectID     string
	ContentTypeID string
	SortOrder     int
}

// AvailableContentTypes resolves the available content types of several subjects in one query
func (r *SubjectContentRepositoryImpl) AvailableContentTypes(ctx context.Context, subjectIDs []string) (map[string][]string, error) {
	result := make(map[string][]string)
	if len(subjectIDs) == 0 {
		return result, nil
	}

	var rows []availableTypeRow
	err := db.GetTxFromContext(ctx, r.db).
		Table("subject_contents AS sc").
		Select("DISTINCT sc.subject_id, sc.content_type_id, ct.sort_order").
		Joins("JOIN content_types AS ct ON ct.id = sc.content_type_id").
		Where("sc.subject_id IN ? AND sc.is_active = ? AND ct.is_active = ?", subjectIDs, true, true).
		Order("sc.subject_id ASC, ct.sort_order ASC, sc.content_type_id ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to resolve available content types", "subject_count", len(subjectIDs), "error", err)
		return nil, fmt.Errorf("failed to resolve available content types: %w", err)
	}

	for _, row := range rows {
		result[row.SubjectID] = append(result[row.SubjectID], row.ContentTypeID)
	}
	return result, nil
}
