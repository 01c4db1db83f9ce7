package render

import (
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/escape/internal/domain/entity"
	"github.com/younwookim/escape/internal/infrastructure/assets"
)

// FSLoader loads PNG images from a file system. Images are cached by id.
type FSLoader struct {
	fsys  fs.FS
	cache map[string]*Sprite
}

// NewFSLoader creates a loader over fsys
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys, cache: make(map[string]*Sprite)}
}

// Load implements entity.AssetLoader
func (l *FSLoader) Load(id string) (entity.Visual, error) {
	if s, ok := l.cache[id]; ok {
		return s, nil
	}
	img, err := decodeImage(l.fsys, id)
	if err != nil {
		return nil, err
	}
	s := &Sprite{ID: id, Image: ebiten.NewImageFromImage(img)}
	l.cache[id] = s
	return s, nil
}

func decodeImage(fsys fs.FS, id string) (image.Image, error) {
	f, err := fsys.Open(id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", id, entity.ErrAssetNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", id, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", id, err)
	}
	return img, nil
}

// PlaceholderLoader draws every asset as a solid box sized from the manifest
type PlaceholderLoader struct {
	manifest *assets.ManifestLoader
	cache    map[string]*Sprite
}

// NewPlaceholderLoader creates a loader that needs no image files
func NewPlaceholderLoader(manifest *assets.ManifestLoader) *PlaceholderLoader {
	return &PlaceholderLoader{manifest: manifest, cache: make(map[string]*Sprite)}
}

// Load implements entity.AssetLoader
func (l *PlaceholderLoader) Load(id string) (entity.Visual, error) {
	if s, ok := l.cache[id]; ok {
		return s, nil
	}
	size, ok := l.manifest.Size(id)
	if !ok || size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("%s: %w", id, entity.ErrAssetNotFound)
	}

	img := ebiten.NewImage(size.Width, size.Height)
	img.Fill(PlaceholderColor(id))
	s := &Sprite{ID: id, Image: img}
	l.cache[id] = s
	return s, nil
}

// PlaceholderColor picks a stable opaque colour for an asset id
func PlaceholderColor(id string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	sum := h.Sum32()
	// Keep channels in the mid range so boxes stand out on black
	return color.RGBA{
		R: 64 + uint8(sum&0x7f),
		G: 64 + uint8((sum>>8)&0x7f),
		B: 64 + uint8((sum>>16)&0x7f),
		A: 255,
	}
}
