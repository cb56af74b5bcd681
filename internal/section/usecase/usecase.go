package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/section"
	"github.com/fekuna/omnipos-storefinder-service/internal/section/dto"
	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"go.uber.org/zap"
)

type sectionUseCase struct {
	repo   section.Repository
	logger logger.ZapLogger
}

func NewSectionUseCase(repo section.Repository, log logger.ZapLogger) section.UseCase {
	return &sectionUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *sectionUseCase) CreateSection(ctx context.Context, input *dto.CreateSectionInput) (int64, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.InvalidID, fmt.Errorf("%w: name is required", section.ErrInvalidSection)
	}
	if input.X < 0 || input.Y < 0 {
		return model.InvalidID, fmt.Errorf("%w: coordinates must not be negative", section.ErrInvalidSection)
	}

	// map_id is a soft reference; the map is not looked up here.
	s := &model.Section{
		Name:  name,
		X:     input.X,
		Y:     input.Y,
		MapID: input.MapID,
	}

	id, err := uc.repo.Create(ctx, s)
	if err != nil {
		uc.logger.Error("failed to create section", zap.Int64("map_id", input.MapID), zap.Error(err))
		return model.InvalidID, fmt.Errorf("create section: %w", err)
	}
	return id, nil
}

func (uc *sectionUseCase) GetSection(ctx context.Context, id int64) (*model.Section, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *sectionUseCase) ListSections(ctx context.Context, mapID int64) ([]model.Section, error) {
	return uc.repo.FindByMap(ctx, mapID)
}
