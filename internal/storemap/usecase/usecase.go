package usecase

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/fekuna/omnipos-storefinder-service/internal/imagestore"
	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/storemap"
	"github.com/fekuna/omnipos-storefinder-service/internal/storemap/dto"
	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"go.uber.org/zap"
)

// ImageStore persists map bitmaps. Satisfied by *imagestore.LocalStore.
type ImageStore interface {
	Save(img image.Image) (string, error)
	Open(path string) (image.Image, error)
}

type storeMapUseCase struct {
	repo   storemap.Repository
	images ImageStore
	logger logger.ZapLogger
}

func NewStoreMapUseCase(repo storemap.Repository, images ImageStore, log logger.ZapLogger) storemap.UseCase {
	return &storeMapUseCase{
		repo:   repo,
		images: images,
		logger: log,
	}
}

func (uc *storeMapUseCase) CreateMap(ctx context.Context, input *dto.CreateMapInput) (int64, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.InvalidID, fmt.Errorf("%w: name is required", storemap.ErrInvalidMap)
	}
	path := strings.TrimSpace(input.ImagePath)
	if path == "" {
		return model.InvalidID, fmt.Errorf("%w: image path is required", storemap.ErrInvalidMap)
	}

	m := &model.StoreMap{
		Name:      name,
		ImagePath: path,
	}

	id, err := uc.repo.Create(ctx, m)
	if err != nil {
		uc.logger.Error("failed to create map", zap.String("name", input.Name), zap.Error(err))
		return model.InvalidID, fmt.Errorf("create map: %w", err)
	}
	return id, nil
}

func (uc *storeMapUseCase) UploadMap(ctx context.Context, input *dto.UploadMapInput) (*model.StoreMap, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", storemap.ErrInvalidMap)
	}

	img, err := imagestore.Decode(input.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storemap.ErrInvalidMap, err)
	}

	path, err := uc.images.Save(img)
	if err != nil {
		return nil, err
	}

	id, err := uc.CreateMap(ctx, &dto.CreateMapInput{Name: name, ImagePath: path})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("map uploaded", zap.Int64("map_id", id), zap.String("image_path", path))
	return &model.StoreMap{ID: id, Name: name, ImagePath: path}, nil
}

func (uc *storeMapUseCase) GetMap(ctx context.Context, id int64) (*model.StoreMap, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *storeMapUseCase) GetMapImagePath(ctx context.Context, id int64) (string, bool, error) {
	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return "", false, err
	}
	if m == nil {
		return "", false, nil
	}
	return m.ImagePath, true, nil
}

func (uc *storeMapUseCase) ListMaps(ctx context.Context) ([]model.StoreMap, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *storeMapUseCase) OpenMapImage(ctx context.Context, id int64) (image.Image, error) {
	path, ok, err := uc.GetMapImagePath(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, storemap.ErrMapNotFound
	}
	return uc.images.Open(path)
}
