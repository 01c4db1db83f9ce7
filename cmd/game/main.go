package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/younwookim/escape/internal/application/game"
	"github.com/younwookim/escape/internal/application/replay"
	"github.com/younwookim/escape/internal/application/screen/explore"
	"github.com/younwookim/escape/internal/application/system"
	"github.com/younwookim/escape/internal/domain/entity"
	"github.com/younwookim/escape/internal/infrastructure/assets"
	"github.com/younwookim/escape/internal/infrastructure/config"
	"github.com/younwookim/escape/internal/infrastructure/render"
	"github.com/younwookim/escape/internal/logger"
)

func main() {
	settingsFlag := flag.String("settings", "settings.yml", "Runtime settings file")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	verifyFlag := flag.Bool("verify", false, "With -replay: check the recording headlessly and exit")
	hotspotFlag := flag.Bool("hotspots", false, "Show clickable hotspots")
	flag.Parse()

	_ = godotenv.Load()

	settings, err := config.LoadSettings(*settingsFlag)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	lg, err := logger.New(logger.Config{
		Level:      settings.Log.Level,
		Encoding:   settings.Log.Encoding,
		OutputPath: settings.Log.Output,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		lg.Fatal("Failed to get config subfs", zap.Error(err))
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadAll()
	if err != nil {
		lg.Fatal("Failed to load config", zap.Error(err))
	}

	var data *replay.ReplayData
	if *replayFlag != "" {
		if data, err = replay.LoadReplay(*replayFlag); err != nil {
			lg.Fatal("Failed to load replay", zap.Error(err))
		}
	}

	if *verifyFlag {
		if err := verify(cfg, data, lg); err != nil {
			lg.Error("Replay verification failed", zap.Error(err))
			os.Exit(1)
		}
		lg.Info("Replay verified", zap.String("session", data.Session))
		return
	}

	nav, err := system.BuildNavigator(cfg, assetLoader(cfg, settings, lg), lg)
	if err != nil {
		lg.Fatal("Failed to build game", zap.Error(err))
	}

	display := cfg.Display.Display
	screen := explore.New(nav, display.ScreenWidth, display.ScreenHeight, lg, explore.Options{
		RecordPath:   *recordFlag,
		Replay:       data,
		ShowHotspots: *hotspotFlag,
	})
	g := game.New(screen, display.ScreenWidth, display.ScreenHeight)
	if display.Framerate > 0 {
		g.SetDT(1.0 / float64(display.Framerate))
		ebiten.SetTPS(display.Framerate)
	}

	// Set up ebiten
	scale := settings.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(display.ScreenWidth)*scale), int(float64(display.ScreenHeight)*scale))
	ebiten.SetWindowTitle(display.Title)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		lg.Fatal("Game stopped", zap.Error(err))
	}
}

// assetLoader returns the PNG loader, or solid placeholders when images are
// unavailable or disabled in settings.
func assetLoader(cfg *config.GameConfig, settings *config.Settings, lg *zap.Logger) entity.AssetLoader {
	manifest := assets.NewManifestLoader(cfg.Assets)
	if settings.Assets.Placeholder {
		return render.NewPlaceholderLoader(manifest)
	}
	if _, err := os.Stat(settings.Assets.Dir); err != nil {
		lg.Warn("Asset directory unavailable, drawing placeholders",
			zap.String("dir", settings.Assets.Dir),
			zap.Error(err),
		)
		return render.NewPlaceholderLoader(manifest)
	}
	return render.NewFSLoader(os.DirFS(settings.Assets.Dir))
}

// verify replays a session without opening a window
func verify(cfg *config.GameConfig, data *replay.ReplayData, lg *zap.Logger) error {
	if data == nil {
		return errors.New("-verify needs -replay")
	}
	nav, err := system.BuildNavigator(cfg, assets.NewManifestLoader(cfg.Assets), lg)
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}
	return replay.Verify(*data, system.NewInputRouter(nav), nav)
}
