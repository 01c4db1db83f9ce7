package main

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/younwookim/escape/internal/application/replay"
	"github.com/younwookim/escape/internal/application/system"
	"github.com/younwookim/escape/internal/infrastructure/assets"
	"github.com/younwookim/escape/internal/infrastructure/config"
	"github.com/younwookim/escape/internal/infrastructure/render"
)

func loadEmbedded(t *testing.T) *config.GameConfig {
	t.Helper()
	fsys, err := fs.Sub(configFS, "configs")
	require.NoError(t, err)
	cfg, err := config.NewFSLoader(fsys, "configs").LoadAll()
	require.NoError(t, err)
	return cfg
}

func TestEmbeddedConfigs(t *testing.T) {
	cfg := loadEmbedded(t)

	nav, err := system.BuildNavigator(cfg, assets.NewManifestLoader(cfg.Assets), zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, system.Validate(nav.Graph(), nav.Rules()))
}

func TestAssetLoader_Placeholder(t *testing.T) {
	cfg := loadEmbedded(t)

	settings := &config.Settings{}
	settings.Assets.Placeholder = true
	_, ok := assetLoader(cfg, settings, zap.NewNop()).(*render.PlaceholderLoader)
	assert.True(t, ok)

	settings = &config.Settings{}
	settings.Assets.Dir = t.TempDir() + "/missing"
	_, ok = assetLoader(cfg, settings, zap.NewNop()).(*render.PlaceholderLoader)
	assert.True(t, ok, "missing directory falls back to placeholders")

	settings.Assets.Dir = t.TempDir()
	_, ok = assetLoader(cfg, settings, zap.NewNop()).(*render.FSLoader)
	assert.True(t, ok)
}

func TestVerify(t *testing.T) {
	cfg := loadEmbedded(t)

	assert.Error(t, verify(cfg, nil, zap.NewNop()))

	data := &replay.ReplayData{
		StartScene: "screen_start",
		Frames:     10,
		Events: []replay.EventRecord{
			{F: 1, Kind: replay.KindPointer, X: 800, Y: 400, To: "main_scene1"},
			{F: 4, Kind: replay.KindKey, Key: "up", To: "ceiling_scene"},
		},
		FinalScene: "ceiling_scene",
	}
	assert.NoError(t, verify(cfg, data, zap.NewNop()))

	data.Events[1].Key = "down"
	assert.ErrorIs(t, verify(cfg, data, zap.NewNop()), replay.ErrDiverged)
}
