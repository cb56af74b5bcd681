package locator

import (
	"context"
	"image"

	"github.com/fekuna/omnipos-storefinder-service/internal/locator/dto"
	"github.com/fekuna/omnipos-storefinder-service/internal/model"
)

// MinLiveQueryLength is the shortest trimmed query LiveSearch hits the store for.
const MinLiveQueryLength = 2

type UseCase interface {
	LiveSearch(ctx context.Context, query string) ([]model.Product, error)
	LocateProduct(ctx context.Context, mapID, productID int64) (image.Image, error)
	ResolveShoppingList(ctx context.Context, mapID int64, text string) (*dto.ShoppingList, error)
	RenderShoppingList(ctx context.Context, mapID int64, text string) (image.Image, *dto.ShoppingList, error)
	RenderSectionMarkers(ctx context.Context, mapID int64) (image.Image, error)
}
