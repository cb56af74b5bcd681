package storemap

import (
	"context"
	"errors"
	"image"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/storemap/dto"
)

var (
	ErrMapNotFound = errors.New("map not found")
	ErrInvalidMap  = errors.New("invalid map")
)

type UseCase interface {
	// CreateMap returns model.InvalidID alongside any error.
	CreateMap(ctx context.Context, input *dto.CreateMapInput) (int64, error)
	UploadMap(ctx context.Context, input *dto.UploadMapInput) (*model.StoreMap, error)
	GetMap(ctx context.Context, id int64) (*model.StoreMap, error)
	GetMapImagePath(ctx context.Context, id int64) (string, bool, error)
	ListMaps(ctx context.Context) ([]model.StoreMap, error)
	OpenMapImage(ctx context.Context, id int64) (image.Image, error)
}
