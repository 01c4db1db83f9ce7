package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/escape/internal/domain/entity"
)

func TestPlacement(t *testing.T) {
	tests := []struct {
		name         string
		x, y, scale  float64
		h            int
		wantX, wantY float64
	}{
		{"background fills canvas", 0, 0, 0.5, 1440, 0, 0},
		{"start button", 720, 350, 0.5, 200, 720, 270},
		{"inventory panel", 1112, 0, 1, 720, 1112, 0},
		{"first key token", 1160, 633, 0.1, 300, 1160, 57},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Placement(tt.x, tt.y, tt.scale, tt.h, 720)
			assert.Equal(t, tt.wantX, x)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}

func TestDecodeImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 2))))

	fsys := fstest.MapFS{
		"key.png":    {Data: buf.Bytes()},
		"broken.png": {Data: []byte("not a png")},
	}

	img, err := decodeImage(fsys, "key.png")
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	_, err = decodeImage(fsys, "missing.png")
	assert.ErrorIs(t, err, entity.ErrAssetNotFound)

	_, err = decodeImage(fsys, "broken.png")
	require.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrAssetNotFound)
	assert.Contains(t, err.Error(), "broken.png")
}

func TestPlaceholderColor(t *testing.T) {
	a := PlaceholderColor("key.png")

	assert.Equal(t, a, PlaceholderColor("key.png"), "stable across calls")
	assert.NotEqual(t, a, PlaceholderColor("door.png"))
	assert.Equal(t, uint8(255), a.A)

	for _, id := range []string{"key.png", "door.png", "background.png"} {
		c := PlaceholderColor(id)
		for _, ch := range []uint8{c.R, c.G, c.B} {
			assert.GreaterOrEqual(t, ch, uint8(64))
			assert.Less(t, ch, uint8(192))
		}
	}
}
