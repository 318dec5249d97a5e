package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/adminjournal/database"
	"github.com/blogem/adminjournal/models"
	"github.com/blogem/adminjournal/repositories"
)

func strPtr(s string) *string { return &s }

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCommand(&out)
	root.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")))
	err := root.Execute()
	return out.String(), err
}

func setupEnv(t *testing.T) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "journal.db")
	t.Setenv("DATABASE_DRIVER", "sqlite3")
	t.Setenv("DATABASE_URL", dbPath)
	t.Setenv("LOG_LEVEL", "error")
	return dbPath
}

func TestMigrateCommand(t *testing.T) {
	setupEnv(t)

	out, err := runCommand(t, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "Applied 001_create_journal_entries\n", out)

	out, err = runCommand(t, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "No pending migrations.\n", out)
}

func TestClearCommand(t *testing.T) {
	dbPath := setupEnv(t)
	t.Setenv("JOURNAL_ENTRY_EXPIRY_DAYS", "30")

	db, err := database.InitializeDatabase(database.SQLite, dbPath)
	require.NoError(t, err)
	repo := repositories.NewJournalRepository(db, database.SQLite)

	for _, age := range []time.Duration{time.Hour, 40 * 24 * time.Hour, 400 * 24 * time.Hour} {
		require.NoError(t, repo.Create(context.Background(), &models.JournalEntry{
			Timestamp:       time.Now().Add(-age),
			Action:          models.ActionView,
			ActorID:         strPtr("1"),
			ActorRepr:       "admin",
			SubjectType:     strPtr("auth.user"),
			SubjectTypeRepr: "auth.user",
		}))
	}
	require.NoError(t, db.Close())

	out, err := runCommand(t, "clear")
	require.NoError(t, err)
	assert.Equal(t, "Operation successful. 2 entries deleted.\n", out)

	out, err = runCommand(t, "clear", "--days", "0")
	require.NoError(t, err)
	assert.Equal(t, "Operation successful. 1 entries deleted.\n", out)
}

func TestClearCommand_MalformedExpiryDays(t *testing.T) {
	setupEnv(t)
	t.Setenv("JOURNAL_ENTRY_EXPIRY_DAYS", "abc")

	out, err := runCommand(t, "clear")
	assert.ErrorContains(t, err, "JOURNAL_ENTRY_EXPIRY_DAYS")
	assert.Empty(t, out)

	// An explicit --days does not depend on the environment value
	out, err = runCommand(t, "clear", "--days", "30")
	require.NoError(t, err)
	assert.Equal(t, "Operation successful. 0 entries deleted.\n", out)
}

func TestClearCommand_InvalidDriver(t *testing.T) {
	setupEnv(t)
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := runCommand(t, "clear")
	assert.Error(t, err)
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	setupEnv(t)
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := runCommand(t, "migrate")
	assert.ErrorContains(t, err, "LOG_LEVEL")
}
