// Package migration owns the database schema: versioned goose scripts per
// driver, with gorm AutoMigrate as the alternative for throwaway databases.
package migration

import (
	"context"
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"issuetracker/internal/shared/logger"
)

//go:embed scripts
var scripts embed.FS

const (
	StrategyGoose       = "goose"
	StrategyAutoMigrate = "auto"
)

// NewStrategy selects a strategy by name. An empty name means goose.
func NewStrategy(name, driver string, log logger.Interface) (Strategy, error) {
	switch strings.ToLower(name) {
	case "", StrategyGoose:
		return NewGooseStrategy(driver, log)
	case StrategyAutoMigrate:
		return NewAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
}

// Manager runs a Strategy and logs around it.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}
	return nil
}

// CreateScript writes a new timestamped goose SQL file into dir. Scripts
// are embedded at build time, so dir should be one of the
// scripts/<driver> directories in this package.
func CreateScript(dir, name string) error {
	if name == "" {
		return fmt.Errorf("migration name is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}
	goose.SetBaseFS(nil)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	return nil
}
