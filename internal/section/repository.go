package section

import (
	"context"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, section *model.Section) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Section, error)
	FindByMap(ctx context.Context, mapID int64) ([]model.Section, error)
	// FindByName matches name exactly within one map; the oldest row wins.
	FindByName(ctx context.Context, mapID int64, name string) (*model.Section, error)
}
