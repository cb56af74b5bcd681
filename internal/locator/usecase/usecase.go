package usecase

import (
	"context"
	"fmt"
	"image"
	"strings"
	"unicode/utf8"

	"github.com/fekuna/omnipos-storefinder-service/internal/locator"
	"github.com/fekuna/omnipos-storefinder-service/internal/locator/dto"
	"github.com/fekuna/omnipos-storefinder-service/internal/mapview"
	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/product"
	"github.com/fekuna/omnipos-storefinder-service/internal/section"
	"github.com/fekuna/omnipos-storefinder-service/internal/storemap"
	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"go.uber.org/zap"
)

type locatorUseCase struct {
	maps     storemap.UseCase
	sections section.UseCase
	products product.UseCase
	logger   logger.ZapLogger
}

func NewLocatorUseCase(maps storemap.UseCase, sections section.UseCase, products product.UseCase, log logger.ZapLogger) locator.UseCase {
	return &locatorUseCase{
		maps:     maps,
		sections: sections,
		products: products,
		logger:   log,
	}
}

func (uc *locatorUseCase) LiveSearch(ctx context.Context, query string) ([]model.Product, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < locator.MinLiveQueryLength {
		return []model.Product{}, nil
	}
	return uc.products.SearchProducts(ctx, query)
}

func (uc *locatorUseCase) LocateProduct(ctx context.Context, mapID, productID int64) (image.Image, error) {
	p, err := uc.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrProductNotFound
	}

	s, err := uc.sections.GetSection(ctx, p.SectionID)
	if err != nil {
		return nil, err
	}
	if s == nil || s.MapID != mapID {
		return nil, fmt.Errorf("%w: product %d is not placed on map %d", section.ErrSectionNotFound, productID, mapID)
	}

	base, err := uc.maps.OpenMapImage(ctx, mapID)
	if err != nil {
		return nil, err
	}

	return mapview.HighlightProduct(base, *s, *p), nil
}

// ResolveShoppingList looks up one product name per line. For each line the
// first search hit placed on mapID wins; hits are grouped by section in the
// order the sections are first seen.
func (uc *locatorUseCase) ResolveShoppingList(ctx context.Context, mapID int64, text string) (*dto.ShoppingList, error) {
	list := &dto.ShoppingList{
		Found:    []model.Product{},
		Missing:  []string{},
		Sections: []mapview.Annotation{},
	}

	sectionCache := make(map[int64]*model.Section)
	annotationIdx := make(map[int64]int)

	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		matches, err := uc.products.SearchProducts(ctx, name)
		if err != nil {
			return nil, err
		}

		var hit *model.Product
		var hitSection *model.Section
		for i := range matches {
			s, err := uc.cachedSection(ctx, sectionCache, matches[i].SectionID)
			if err != nil {
				return nil, err
			}
			if s != nil && s.MapID == mapID {
				hit, hitSection = &matches[i], s
				break
			}
		}

		if hit == nil {
			list.Missing = append(list.Missing, name)
			continue
		}

		list.Found = append(list.Found, *hit)
		idx, ok := annotationIdx[hitSection.ID]
		if !ok {
			idx = len(list.Sections)
			annotationIdx[hitSection.ID] = idx
			list.Sections = append(list.Sections, mapview.Annotation{Section: *hitSection})
		}
		list.Sections[idx].Products = append(list.Sections[idx].Products, *hit)
	}

	uc.logger.Debug("shopping list resolved",
		zap.Int64("map_id", mapID),
		zap.Int("found", len(list.Found)),
		zap.Int("missing", len(list.Missing)),
	)
	return list, nil
}

func (uc *locatorUseCase) RenderShoppingList(ctx context.Context, mapID int64, text string) (image.Image, *dto.ShoppingList, error) {
	base, err := uc.maps.OpenMapImage(ctx, mapID)
	if err != nil {
		return nil, nil, err
	}

	list, err := uc.ResolveShoppingList(ctx, mapID, text)
	if err != nil {
		return nil, nil, err
	}

	return mapview.HighlightSections(base, list.Sections), list, nil
}

func (uc *locatorUseCase) RenderSectionMarkers(ctx context.Context, mapID int64) (image.Image, error) {
	base, err := uc.maps.OpenMapImage(ctx, mapID)
	if err != nil {
		return nil, err
	}

	sections, err := uc.sections.ListSections(ctx, mapID)
	if err != nil {
		return nil, err
	}

	return mapview.MarkSections(base, sections), nil
}

// cachedSection memoises lookups, including misses.
func (uc *locatorUseCase) cachedSection(ctx context.Context, cache map[int64]*model.Section, id int64) (*model.Section, error) {
	if s, ok := cache[id]; ok {
		return s, nil
	}
	s, err := uc.sections.GetSection(ctx, id)
	if err != nil {
		return nil, err
	}
	cache[id] = s
	return s, nil
}
