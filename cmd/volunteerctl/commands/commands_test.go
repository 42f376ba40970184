package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()), out.String())
	return out.String()
}

func TestCommandsAgainstSQLiteFile(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "volunteer.db"))
	t.Setenv("AUTH_SKIP", "true")
	t.Setenv("SEED_ADMIN_ID", "")
	t.Setenv("SEED_ADMIN_EMAIL", "")

	out := runCommand(t, "migrate")
	assert.Contains(t, out, "applied 00001")

	out = runCommand(t, "migrate", "status")
	assert.Contains(t, out, "applied")
	assert.NotContains(t, out, "pending")

	out = runCommand(t, "seed")
	assert.Contains(t, out, "family created=true, year activated=true, categories created=3")

	out = runCommand(t, "seed")
	assert.Contains(t, out, "family created=false, year activated=false, categories created=0")

	out = runCommand(t, "activate-year", "2024-2025")
	assert.Contains(t, out, "2024-2025 is active, 0 families attached")

	out = runCommand(t, "promote-admin", "--email", "ADMIN@example.com")
	assert.Contains(t, out, "admin@example.com (admin_1) is now an admin")
}

func TestActivateYearRequiresID(t *testing.T) {
	rootCmd.SetArgs([]string{"activate-year"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	assert.Error(t, rootCmd.Execute())
}
