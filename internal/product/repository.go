package product

import (
	"context"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindBySection(ctx context.Context, sectionID int64) ([]model.Product, error)

	// Search is a case-sensitive substring match on the product name across all maps.
	Search(ctx context.Context, term string) ([]model.Product, error)

	// Import inserts rows whose section name resolves within mapID, in one
	// transaction. It returns how many rows were inserted before any failure.
	Import(ctx context.Context, mapID int64, rows []dto.ImportRow) (int, error)
}
