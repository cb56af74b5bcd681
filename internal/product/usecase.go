package product

import (
	"context"
	"errors"
	"io"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/product/dto"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrImportTooLarge  = errors.New("import file too large")
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (int64, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProductsBySection(ctx context.Context, sectionID int64) ([]model.Product, error)
	SearchProducts(ctx context.Context, term string) ([]model.Product, error)

	// CSV import
	ImportCSV(ctx context.Context, mapID int64, text string) (int, error)
	ImportFile(ctx context.Context, mapID int64, r io.Reader) (int, error)
}
