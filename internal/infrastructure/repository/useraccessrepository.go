package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumen-edu/lumen/internal/domain/access"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/mappers"
	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
	"github.com/lumen-edu/lumen/internal/shared/db"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

// UserAccessRepositoryImpl implements access.Repository
type UserAccessRepositoryImpl struct {
	db     *gorm.DB
	mapper *mappers.UserAccessMapper
	logger logger.Interface
}

// NewUserAccessRepository creates a new user access repository
func NewUserAccessRepository(gdb *gorm.DB, logger logger.Interface) access.Repository {
	return &UserAccessRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewUserAccessMapper(),
		logger: logger,
	}
}

// Grant inserts access rows, ignoring those that hit the (user, subject, content type) unique index
func (r *UserAccessRepositoryImpl) Grant(ctx context.Context, grants []*access.UserAccess) error {
	if len(grants) == 0 {
		return nil
	}

	modelList := make([]*models.UserAccessModel, 0, len(grants))
	for _, g := range grants {
		modelList = append(modelList, r.mapper.ToModel(g))
	}

	result := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&modelList)
	if result.Error != nil {
		r.logger.Errorw("failed to grant access",
			"user_id", grants[0].UserID(),
			"count", len(grants),
			"error", result.Error)
		return fmt.Errorf("failed to grant access: %w", result.Error)
	}

	r.logger.Infow("access granted",
		"user_id", grants[0].UserID(),
		"requested", len(grants),
		"inserted", result.RowsAffected)
	return nil
}

func (r *UserAccessRepositoryImpl) Has(ctx context.Context, userID, subjectID, contentTypeID string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.UserAccessModel{}).
		Scopes(db.OwnedBy(userID)).
		Where("subject_id = ? AND content_type_id = ?", subjectID, contentTypeID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check access", "user_id", userID, "subject_id", subjectID, "error", err)
		return false, fmt.Errorf("failed to check access: %w", err)
	}
	return count > 0, nil
}

func (r *UserAccessRepositoryImpl) OwnedContentTypes(ctx context.Context, userID, subjectID string) ([]string, error) {
	var ids []string
	err := db.GetTxFromContext(ctx, r.db).Model(&models.UserAccessModel{}).
		Scopes(db.OwnedBy(userID)).
		Where("subject_id = ?", subjectID).
		Order("content_type_id ASC").
		Pluck("content_type_id", &ids).Error
	if err != nil {
		r.logger.Errorw("failed to list owned content types", "user_id", userID, "subject_id", subjectID, "error", err)
		return nil, fmt.Errorf("failed to list owned content types: %w", err)
	}
	return ids, nil
}

func (r *UserAccessRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*access.UserAccess, error) {
	var modelList []*models.UserAccessModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Order("granted_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list access", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list access: %w", err)
	}
	return r.mapper.ToDomainList(modelList), nil
}
