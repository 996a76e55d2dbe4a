package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lecturedeck/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The pool is pinned to one connection so every query sees the same database.
func NewTestDB(t *testing.T) *sql.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), sqlDB), "failed to apply migrations")

	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}
