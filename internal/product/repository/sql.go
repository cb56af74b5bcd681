package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/product/dto"
	"github.com/fekuna/omnipos-storefinder-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	query := `INSERT INTO products (name, section_id) VALUES (:name, :section_id) RETURNING id`

	stmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return model.InvalidID, err
	}
	defer stmt.Close()

	var id int64
	if err := stmt.GetContext(ctx, &id, p); err != nil {
		return model.InvalidID, err
	}
	p.ID = id
	return id, nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	query := r.DB.Rebind(`SELECT id, name, section_id FROM products WHERE id = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *SQLRepository) FindBySection(ctx context.Context, sectionID int64) ([]model.Product, error) {
	products := []model.Product{}
	query := r.DB.Rebind(`SELECT id, name, section_id FROM products WHERE section_id = ? ORDER BY id`)
	if err := r.DB.SelectContext(ctx, &products, query, sectionID); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLRepository) Search(ctx context.Context, term string) ([]model.Product, error) {
	products := []model.Product{}
	query := fmt.Sprintf(
		"SELECT id, name, section_id FROM products WHERE %s ORDER BY id",
		database.ContainsExpr(r.DB.DriverName(), "name"),
	)
	if err := r.DB.SelectContext(ctx, &products, r.DB.Rebind(query), term); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLRepository) Import(ctx context.Context, mapID int64, rows []dto.ImportRow) (int, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	// Every statement goes through tx; SQLite runs on a single connection.
	lookup := tx.Rebind(`SELECT id FROM sections WHERE name = ? AND map_id = ? ORDER BY id LIMIT 1`)
	insert := tx.Rebind(`INSERT INTO products (name, section_id) VALUES (?, ?)`)

	resolved := make(map[string]int64) // section name -> id, InvalidID when missing
	imported := 0

	for _, row := range rows {
		sectionID, seen := resolved[row.SectionName]
		if !seen {
			err := tx.GetContext(ctx, &sectionID, lookup, row.SectionName, mapID)
			switch {
			case errors.Is(err, sql.ErrNoRows):
				sectionID = model.InvalidID
			case err != nil:
				return imported, fmt.Errorf("line %d: resolve section %q: %w", row.Line, row.SectionName, err)
			}
			resolved[row.SectionName] = sectionID
		}
		if sectionID == model.InvalidID {
			continue
		}

		if _, err := tx.ExecContext(ctx, insert, row.ProductName, sectionID); err != nil {
			return imported, fmt.Errorf("line %d: insert product %q: %w", row.Line, row.ProductName, err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return imported, err
	}
	return imported, nil
}
