// Package dbtest opens migrated in-memory SQLite stores for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-storefinder-service/pkg/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func New(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := database.NewDB(&database.Config{
		Driver: database.DriverSQLite,
		DSN:    ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}
