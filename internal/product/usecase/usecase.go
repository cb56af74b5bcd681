package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/product"
	"github.com/fekuna/omnipos-storefinder-service/internal/product/dto"
	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"go.uber.org/zap"
)

// MaxImportBytes caps the size of a CSV import file.
const MaxImportBytes = 10 << 20

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (int64, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.InvalidID, fmt.Errorf("%w: name is required", product.ErrInvalidProduct)
	}

	p := &model.Product{
		Name:      name,
		SectionID: input.SectionID,
	}

	id, err := uc.repo.Create(ctx, p)
	if err != nil {
		uc.logger.Error("failed to create product", zap.Int64("section_id", input.SectionID), zap.Error(err))
		return model.InvalidID, fmt.Errorf("create product: %w", err)
	}
	return id, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) ListProductsBySection(ctx context.Context, sectionID int64) ([]model.Product, error) {
	return uc.repo.FindBySection(ctx, sectionID)
}

func (uc *productUseCase) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	return uc.repo.Search(ctx, term)
}

func (uc *productUseCase) ImportCSV(ctx context.Context, mapID int64, text string) (int, error) {
	rows := ParseImportCSV(text)

	count, err := uc.repo.Import(ctx, mapID, rows)
	if err != nil {
		uc.logger.Error("product import rolled back",
			zap.Int64("map_id", mapID),
			zap.Int("processed", count),
			zap.Error(err),
		)
		return count, fmt.Errorf("import products: %w", err)
	}

	uc.logger.Info("products imported",
		zap.Int64("map_id", mapID),
		zap.Int("rows", len(rows)),
		zap.Int("imported", count),
		zap.Int("unresolved", len(rows)-count),
	)
	return count, nil
}

func (uc *productUseCase) ImportFile(ctx context.Context, mapID int64, r io.Reader) (int, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImportBytes+1))
	if err != nil {
		return 0, fmt.Errorf("read import file: %w", err)
	}
	if len(data) > MaxImportBytes {
		uc.logger.Warn("product import rejected", zap.Int64("map_id", mapID), zap.Int("limit_bytes", MaxImportBytes))
		return 0, fmt.Errorf("%w: limit is %d bytes", product.ErrImportTooLarge, MaxImportBytes)
	}
	return uc.ImportCSV(ctx, mapID, string(data))
}
