package section

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/section/dto"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrInvalidSection  = errors.New("invalid section")
)

type UseCase interface {
	CreateSection(ctx context.Context, input *dto.CreateSectionInput) (int64, error)
	GetSection(ctx context.Context, id int64) (*model.Section, error)
	ListSections(ctx context.Context, mapID int64) ([]model.Section, error)
}
