package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, m *model.StoreMap) (int64, error) {
	query := `INSERT INTO store_maps (name, image_path) VALUES (:name, :image_path) RETURNING id`

	stmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return model.InvalidID, err
	}
	defer stmt.Close()

	var id int64
	if err := stmt.GetContext(ctx, &id, m); err != nil {
		return model.InvalidID, err
	}
	m.ID = id
	return id, nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.StoreMap, error) {
	var m model.StoreMap
	query := r.DB.Rebind(`SELECT id, name, image_path FROM store_maps WHERE id = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]model.StoreMap, error) {
	maps := []model.StoreMap{}
	err := r.DB.SelectContext(ctx, &maps, `SELECT id, name, image_path FROM store_maps ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return maps, nil
}
