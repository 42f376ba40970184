package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

type MigrationState struct {
	Version int64
	Path    string
	Applied bool
}

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, gormDB *gorm.DB) ([]int64, error) {
	provider, err := newProvider(gormDB)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, result := range results {
		if result.Source != nil {
			applied = append(applied, result.Source.Version)
		}
	}
	return applied, nil
}

func MigrationStatus(ctx context.Context, gormDB *gorm.DB) ([]MigrationState, error) {
	provider, err := newProvider(gormDB)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}

	result := make([]MigrationState, 0, len(statuses))
	for _, status := range statuses {
		if status.Source == nil {
			continue
		}
		result = append(result, MigrationState{
			Version: status.Source.Version,
			Path:    status.Source.Path,
			Applied: status.State == goose.StateApplied,
		})
	}
	return result, nil
}

func newProvider(gormDB *gorm.DB) (*goose.Provider, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}

	dialect := goose.DialectSQLite3
	if gormDB.Dialector.Name() == "postgres" {
		dialect = goose.DialectPostgres
	}

	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return provider, nil
}
