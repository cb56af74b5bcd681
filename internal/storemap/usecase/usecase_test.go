package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-storefinder-service/internal/imagestore"
	"github.com/fekuna/omnipos-storefinder-service/internal/model"
	"github.com/fekuna/omnipos-storefinder-service/internal/storemap"
	"github.com/fekuna/omnipos-storefinder-service/internal/storemap/dto"
	"github.com/fekuna/omnipos-storefinder-service/internal/storemap/repository"
	"github.com/fekuna/omnipos-storefinder-service/pkg/database/dbtest"
	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct{}

func (failingRepo) Create(context.Context, *model.StoreMap) (int64, error) {
	return model.InvalidID, errors.New("disk full")
}
func (failingRepo) FindByID(context.Context, int64) (*model.StoreMap, error) { return nil, nil }
func (failingRepo) FindAll(context.Context) ([]model.StoreMap, error)        { return nil, nil }

func newUseCase(t *testing.T) storemap.UseCase {
	repo := repository.NewSQLRepository(dbtest.New(t))
	return NewStoreMapUseCase(repo, imagestore.NewLocalStore(t.TempDir()), logger.NewNop())
}

func pngBytes(t *testing.T, w, h int) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestCreateMapAndGetPath(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	id, err := uc.CreateMap(ctx, &dto.CreateMapInput{Name: "Test Map", ImagePath: "/test/path/image.jpg"})
	require.NoError(t, err)
	assert.NotEqual(t, model.InvalidID, id)

	path, ok, err := uc.GetMapImagePath(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/test/path/image.jpg", path)
}

func TestGetMapImagePathAbsent(t *testing.T) {
	uc := newUseCase(t)

	path, ok, err := uc.GetMapImagePath(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path)
}

func TestCreateMapFailureReturnsSentinel(t *testing.T) {
	uc := NewStoreMapUseCase(failingRepo{}, imagestore.NewLocalStore(t.TempDir()), logger.NewNop())

	id, err := uc.CreateMap(context.Background(), &dto.CreateMapInput{Name: "x", ImagePath: "/maps/x.png"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, storemap.ErrInvalidMap)
	assert.Equal(t, model.InvalidID, id)
}

func TestUploadMapStoresImage(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	m, err := uc.UploadMap(ctx, &dto.UploadMapInput{Name: "  Ground floor ", Image: bytes.NewReader(pngBytes(t, 20, 10))})
	require.NoError(t, err)
	assert.Equal(t, "Ground floor", m.Name)
	assert.Contains(t, m.ImagePath, "store_map_")

	img, err := uc.OpenMapImage(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 10), img.Bounds())

	maps, err := uc.ListMaps(ctx)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, m.ID, maps[0].ID)
}

func TestUploadMapRejectsBadInput(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.UploadMap(ctx, &dto.UploadMapInput{Name: " ", Image: bytes.NewReader(pngBytes(t, 1, 1))})
	assert.ErrorIs(t, err, storemap.ErrInvalidMap)

	_, err = uc.UploadMap(ctx, &dto.UploadMapInput{Name: "Map", Image: strings.NewReader("plain text")})
	assert.ErrorIs(t, err, storemap.ErrInvalidMap)
}

func TestCreateMapRejectsBlankFields(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	id, err := uc.CreateMap(ctx, &dto.CreateMapInput{Name: "   ", ImagePath: "x"})
	assert.ErrorIs(t, err, storemap.ErrInvalidMap)
	assert.Equal(t, model.InvalidID, id)

	id, err = uc.CreateMap(ctx, &dto.CreateMapInput{Name: "Annex", ImagePath: " "})
	assert.ErrorIs(t, err, storemap.ErrInvalidMap)
	assert.Equal(t, model.InvalidID, id)

	maps, err := uc.ListMaps(ctx)
	require.NoError(t, err)
	assert.Empty(t, maps)
}

func TestCreateMapTrimsName(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	id, err := uc.CreateMap(ctx, &dto.CreateMapInput{Name: "  Annex ", ImagePath: "/maps/a.png"})
	require.NoError(t, err)

	m, err := uc.GetMap(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Annex", m.Name)
}

func TestOpenMapImageUnknownMap(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.OpenMapImage(context.Background(), 7)
	assert.ErrorIs(t, err, storemap.ErrMapNotFound)
}
