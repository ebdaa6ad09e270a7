package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lumen-edu/lumen/internal/shared/constants"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy for a database driver: versioned goose scripts for
// mysql, gorm AutoMigrate for sqlite.
func NewManager(driver string) *Manager {
	var strategy Strategy
	switch driver {
	case constants.DriverMySQL:
		strategy = NewGooseStrategy(constants.DriverMySQL)
	default:
		strategy = NewGormAutoMigrateStrategy()
	}
	return NewManagerWithStrategy(strategy)
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLoggerWithSlog(logger.WithComponent("migration.manager")),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

// Rollback undoes the last steps migrations
func (m *Manager) Rollback(db *gorm.DB, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be positive")
	}
	return m.strategy.Rollback(db, steps)
}

func (m *Manager) Status(db *gorm.DB) error {
	return m.strategy.Status(db)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
