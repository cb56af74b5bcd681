package imagestore

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "maps")
	store := NewLocalStore(dir)

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	path, err := store.Save(img)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "store_map_"))
	assert.Equal(t, ".png", filepath.Ext(path))

	loaded, err := store.Open(path)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), loaded.Bounds())

	r, g, b, a := loaded.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestSaveUsesUniqueNames(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	img := image.NewGray(image.Rect(0, 0, 1, 1))

	first, err := store.Save(img)
	require.NoError(t, err)
	second, err := store.Save(img)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestOpenMissingFile(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Open(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8)), nil))

	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
}

func TestDecodeRejectsText(t *testing.T) {
	_, err := Decode(strings.NewReader("not an image"))
	require.Error(t, err)
}
