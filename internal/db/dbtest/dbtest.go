// Package dbtest opens throwaway migrated SQLite databases for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"volunteer-tracker-go/internal/config"
	"volunteer-tracker-go/internal/db"
	"volunteer-tracker-go/pkg/logger"
)

// Open returns an isolated in-memory database with every migration applied.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on",
	}
	gormDB, err := db.Open(cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(gormDB)
	})

	_, err = db.Migrate(context.Background(), gormDB)
	require.NoError(t, err)
	return gormDB
}
