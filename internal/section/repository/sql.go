package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/jmoiron/sqlx"
)

const sectionColumns = `id, name, x, y, map_id`

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, s *model.Section) (int64, error) {
	query := `
        INSERT INTO sections (name, x, y, map_id)
        VALUES (:name, :x, :y, :map_id)
        RETURNING id
    `
	stmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return model.InvalidID, err
	}
	defer stmt.Close()

	var id int64
	if err := stmt.GetContext(ctx, &id, s); err != nil {
		return model.InvalidID, err
	}
	s.ID = id
	return id, nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Section, error) {
	var s model.Section
	query := r.DB.Rebind(`SELECT ` + sectionColumns + ` FROM sections WHERE id = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQLRepository) FindByMap(ctx context.Context, mapID int64) ([]model.Section, error) {
	sections := []model.Section{}
	query := r.DB.Rebind(`SELECT ` + sectionColumns + ` FROM sections WHERE map_id = ? ORDER BY id`)
	if err := r.DB.SelectContext(ctx, &sections, query, mapID); err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *SQLRepository) FindByName(ctx context.Context, mapID int64, name string) (*model.Section, error) {
	var s model.Section
	query := r.DB.Rebind(`SELECT ` + sectionColumns + ` FROM sections WHERE name = ? AND map_id = ? ORDER BY id LIMIT 1`)
	err := r.DB.GetContext(ctx, &s, query, name, mapID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
