package storemap

import (
	"context"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, m *model.StoreMap) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.StoreMap, error)
	FindAll(ctx context.Context) ([]model.StoreMap, error)
}
