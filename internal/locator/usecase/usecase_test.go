package usecase

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/fekuna/omnipos-storefinder-service/internal/imagestore"
	"github.com/fekuna/omnipos-storefinder-service/internal/locator"
	"github.com/fekuna/omnipos-storefinder-service/internal/product"
	productRepo "github.com/fekuna/omnipos-storefinder-service/internal/product/repository"
	productUC "github.com/fekuna/omnipos-storefinder-service/internal/product/usecase"
	"github.com/fekuna/omnipos-storefinder-service/internal/section"
	sectionDTO "github.com/fekuna/omnipos-storefinder-service/internal/section/dto"
	sectionRepo "github.com/fekuna/omnipos-storefinder-service/internal/section/repository"
	sectionUC "github.com/fekuna/omnipos-storefinder-service/internal/section/usecase"
	"github.com/fekuna/omnipos-storefinder-service/internal/storemap"
	mapDTO "github.com/fekuna/omnipos-storefinder-service/internal/storemap/dto"
	mapRepo "github.com/fekuna/omnipos-storefinder-service/internal/storemap/repository"
	mapUC "github.com/fekuna/omnipos-storefinder-service/internal/storemap/usecase"
	"github.com/fekuna/omnipos-storefinder-service/pkg/database/dbtest"
	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc       locator.UseCase
	maps     storemap.UseCase
	sections section.UseCase
	products product.UseCase
	images   *imagestore.LocalStore
}

func newFixture(t *testing.T) *fixture {
	db := dbtest.New(t)
	log := logger.NewNop()
	images := imagestore.NewLocalStore(t.TempDir())

	f := &fixture{
		maps:     mapUC.NewStoreMapUseCase(mapRepo.NewSQLRepository(db), images, log),
		sections: sectionUC.NewSectionUseCase(sectionRepo.NewSQLRepository(db), log),
		products: productUC.NewProductUseCase(productRepo.NewSQLRepository(db), log),
		images:   images,
	}
	f.uc = NewLocatorUseCase(f.maps, f.sections, f.products, log)
	return f
}

func (f *fixture) addMap(t *testing.T) int64 {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 400, 400))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	path, err := f.images.Save(img)
	require.NoError(t, err)

	id, err := f.maps.CreateMap(context.Background(), &mapDTO.CreateMapInput{Name: "Store", ImagePath: path})
	require.NoError(t, err)
	return id
}

func (f *fixture) addSection(t *testing.T, mapID int64, name string, x, y float64) int64 {
	t.Helper()
	id, err := f.sections.CreateSection(context.Background(), &sectionDTO.CreateSectionInput{MapID: mapID, Name: name, X: x, Y: y})
	require.NoError(t, err)
	return id
}

func (f *fixture) importCSV(t *testing.T, mapID int64, text string) {
	t.Helper()
	_, err := f.products.ImportCSV(context.Background(), mapID, text)
	require.NoError(t, err)
}

func pixel(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestLiveSearchGuard(t *testing.T) {
	f := newFixture(t)
	mapID := f.addMap(t)
	f.addSection(t, mapID, "Fruits", 50, 50)
	f.importCSV(t, mapID, "Apple,Fruits\nApricot,Fruits")

	ctx := context.Background()
	for _, q := range []string{"", " ", "A", " A "} {
		results, err := f.uc.LiveSearch(ctx, q)
		require.NoError(t, err)
		assert.Empty(t, results, "query %q", q)
	}

	results, err := f.uc.LiveSearch(ctx, " Ap ")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestLocateProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mapID := f.addMap(t)
	f.addSection(t, mapID, "Dairy", 100, 100)
	f.importCSV(t, mapID, "Milk,Dairy")

	found, err := f.products.SearchProducts(ctx, "Milk")
	require.NoError(t, err)
	require.Len(t, found, 1)

	img, err := f.uc.LocateProduct(ctx, mapID, found[0].ID)
	require.NoError(t, err)
	c := pixel(img, 100, 100)
	assert.InDelta(t, 127, c.R, 3)
	assert.Equal(t, uint8(255), c.G)
}

func TestLocateProductErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mapID := f.addMap(t)
	otherMap := f.addMap(t)
	f.addSection(t, otherMap, "Dairy", 100, 100)
	f.importCSV(t, otherMap, "Milk,Dairy")

	_, err := f.uc.LocateProduct(ctx, mapID, 999)
	assert.ErrorIs(t, err, product.ErrProductNotFound)

	found, err := f.products.SearchProducts(ctx, "Milk")
	require.NoError(t, err)
	require.Len(t, found, 1)

	_, err = f.uc.LocateProduct(ctx, mapID, found[0].ID)
	assert.ErrorIs(t, err, section.ErrSectionNotFound)

	_, err = f.uc.LocateProduct(ctx, 12345, found[0].ID)
	assert.ErrorIs(t, err, section.ErrSectionNotFound)
}

func TestResolveShoppingListGroupsBySection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mapID := f.addMap(t)
	otherMap := f.addMap(t)
	fruits := f.addSection(t, mapID, "Fruits", 50, 50)
	dairy := f.addSection(t, mapID, "Dairy", 200, 200)
	f.addSection(t, otherMap, "Tools", 10, 10)
	f.importCSV(t, mapID, "Apple,Fruits\nMilk,Dairy\nPear,Fruits")
	f.importCSV(t, otherMap, "Hammer,Tools")

	list, err := f.uc.ResolveShoppingList(ctx, mapID, "Milk\n\n  Apple \nHammer\nPear\nCaviar\n")
	require.NoError(t, err)

	var found []string
	for _, p := range list.Found {
		found = append(found, p.Name)
	}
	assert.Equal(t, []string{"Milk", "Apple", "Pear"}, found)
	assert.Equal(t, []string{"Hammer", "Caviar"}, list.Missing)

	require.Len(t, list.Sections, 2)
	assert.Equal(t, dairy, list.Sections[0].Section.ID)
	assert.Equal(t, fruits, list.Sections[1].Section.ID)
	require.Len(t, list.Sections[1].Products, 2)
	assert.Equal(t, "Apple", list.Sections[1].Products[0].Name)
	assert.Equal(t, "Pear", list.Sections[1].Products[1].Name)
}

func TestResolveShoppingListPrefersHitOnMap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mapID := f.addMap(t)
	otherMap := f.addMap(t)
	f.addSection(t, otherMap, "Juices", 10, 10)
	f.addSection(t, mapID, "Drinks", 60, 60)
	f.importCSV(t, otherMap, "Apple Juice,Juices")
	f.importCSV(t, mapID, "Apple Juice Light,Drinks")

	list, err := f.uc.ResolveShoppingList(ctx, mapID, "Apple Juice")
	require.NoError(t, err)
	require.Len(t, list.Found, 1)
	assert.Equal(t, "Apple Juice Light", list.Found[0].Name)
}

func TestRenderShoppingList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mapID := f.addMap(t)
	f.addSection(t, mapID, "Fruits", 50, 50)
	f.addSection(t, mapID, "Dairy", 50, 250)
	f.importCSV(t, mapID, "Apple,Fruits\nMilk,Dairy")

	img, list, err := f.uc.RenderShoppingList(ctx, mapID, "Apple\nMilk")
	require.NoError(t, err)
	assert.Len(t, list.Found, 2)

	first := pixel(img, 50, 50)
	assert.InDelta(t, 127, first.R, 3)
	assert.Equal(t, uint8(255), first.G)

	second := pixel(img, 50, 250)
	assert.InDelta(t, 127, second.G, 3)
	assert.Equal(t, uint8(255), second.B)
}

func TestRenderSectionMarkers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mapID := f.addMap(t)
	f.addSection(t, mapID, "A", 40, 40)
	f.addSection(t, mapID, "B", 300, 300)

	img, err := f.uc.RenderSectionMarkers(ctx, mapID)
	require.NoError(t, err)
	for _, pt := range []image.Point{{40, 40}, {300, 300}} {
		c := pixel(img, pt.X, pt.Y)
		assert.InDelta(t, 255, c.R, 3)
		assert.InDelta(t, 0, c.G, 3)
	}

	_, err = f.uc.RenderSectionMarkers(ctx, 999)
	assert.ErrorIs(t, err, storemap.ErrMapNotFound)
}
