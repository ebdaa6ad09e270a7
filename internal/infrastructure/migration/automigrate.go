package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lumen-edu/lumen/internal/infrastructure/persistence/models"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

// AutoMigrateModels lists every table the service owns
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.SubjectModel{},
		&models.ContentTypeModel{},
		&models.SubjectContentModel{},
		&models.SubjectContentTypePricingModel{},
		&models.CartItemModel{},
		&models.OfferModel{},
		&models.UserAccessModel{},
		&models.PurchaseModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the gorm models. Used for sqlite.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLoggerWithSlog(logger.WithComponent("migration.automigrate")),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	modelList := AutoMigrateModels()
	if err := db.AutoMigrate(modelList...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migration completed", "tables", len(modelList))
	return nil
}

func (s *GormAutoMigrateStrategy) Rollback(db *gorm.DB, steps int) error {
	return fmt.Errorf("rollback is not supported by %s", s.GetName())
}

func (s *GormAutoMigrateStrategy) Status(db *gorm.DB) error {
	for _, m := range AutoMigrateModels() {
		s.logger.Infow("table status", "model", fmt.Sprintf("%T", m), "exists", db.Migrator().HasTable(m))
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
