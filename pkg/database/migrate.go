package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS store_maps (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		image_path TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		x REAL,
		y REAL,
		map_id INTEGER,
		FOREIGN KEY(map_id) REFERENCES store_maps(id)
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		section_id INTEGER,
		FOREIGN KEY(section_id) REFERENCES sections(id)
	)`,
}

// map_id and section_id are soft references; products may outlive their section.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS store_maps (
		id BIGSERIAL PRIMARY KEY,
		name TEXT,
		image_path TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		id BIGSERIAL PRIMARY KEY,
		name TEXT,
		x DOUBLE PRECISION,
		y DOUBLE PRECISION,
		map_id BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT,
		section_id BIGINT
	)`,
}

// Migrate creates the store_maps, sections and products tables when missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema := sqliteSchema
	if db.DriverName() == DriverPostgres {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
