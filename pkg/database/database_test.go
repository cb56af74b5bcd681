package database_test

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-storefinder-service/pkg/database"
	"github.com/fekuna/omnipos-storefinder-service/pkg/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBRejectsUnknownDriver(t *testing.T) {
	_, err := database.NewDB(&database.Config{Driver: "mysql", DSN: "x"})
	require.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := dbtest.New(t)
	require.NoError(t, database.Migrate(context.Background(), db))

	var tables []string
	err := db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('store_maps', 'sections', 'products') ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"products", "sections", "store_maps"}, tables)
}

func TestContainsExpr(t *testing.T) {
	assert.Equal(t, "instr(name, ?) > 0", database.ContainsExpr(database.DriverSQLite, "name"))
	assert.Equal(t, "strpos(name, ?) > 0", database.ContainsExpr(database.DriverPostgres, "name"))
}

func TestContainsExprIsCaseSensitive(t *testing.T) {
	db := dbtest.New(t)

	var hits int
	query := "SELECT count(*) FROM (SELECT 'Apple Juice' AS name) t WHERE " + database.ContainsExpr(db.DriverName(), "name")
	require.NoError(t, db.Get(&hits, db.Rebind(query), "apple"))
	assert.Zero(t, hits)

	require.NoError(t, db.Get(&hits, db.Rebind(query), "Apple"))
	assert.Equal(t, 1, hits)
}
