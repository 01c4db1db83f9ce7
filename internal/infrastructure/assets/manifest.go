// Package assets resolves asset identifiers without touching pixel data.
//
// The manifest loader answers sizes from assets.json, which is all the scene
// engine needs for hit testing. Binaries that draw use the ebiten loaders in
// the render package instead.
package assets

import (
	"fmt"

	"github.com/younwookim/escape/internal/domain/entity"
	"github.com/younwookim/escape/internal/infrastructure/config"
)

// Stub is a size-only visual
type Stub struct {
	ID     string
	Width  int
	Height int
}

// Size implements entity.Visual
func (s Stub) Size() (int, int) {
	return s.Width, s.Height
}

// ManifestLoader resolves assets from the assets.json manifest
type ManifestLoader struct {
	sizes map[string]config.AssetSize
}

// NewManifestLoader creates a loader over the given manifest
func NewManifestLoader(cfg *config.AssetsConfig) *ManifestLoader {
	sizes := make(map[string]config.AssetSize, len(cfg.Assets))
	for id, size := range cfg.Assets {
		sizes[id] = size
	}
	return &ManifestLoader{sizes: sizes}
}

// Load implements entity.AssetLoader
func (l *ManifestLoader) Load(id string) (entity.Visual, error) {
	size, ok := l.sizes[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, entity.ErrAssetNotFound)
	}
	return Stub{ID: id, Width: size.Width, Height: size.Height}, nil
}

// Size returns the manifest size of an asset
func (l *ManifestLoader) Size(id string) (config.AssetSize, bool) {
	size, ok := l.sizes[id]
	return size, ok
}

// Len returns the number of known assets
func (l *ManifestLoader) Len() int {
	return len(l.sizes)
}
