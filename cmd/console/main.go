// Command console plays the escape room in a terminal, one hotspot or key at a time.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/younwookim/escape/internal/application/system"
	"github.com/younwookim/escape/internal/infrastructure/assets"
	"github.com/younwookim/escape/internal/infrastructure/config"
	"github.com/younwookim/escape/internal/logger"
)

// defaultLogFile keeps log lines off the alternate screen
const defaultLogFile = "console.log"

func main() {
	configDir := flag.String("configs", "cmd/game/configs", "Directory holding the game data files")
	settingsFlag := flag.String("settings", "settings.yml", "Runtime settings file")
	flag.Parse()

	_ = godotenv.Load()

	settings, err := config.LoadSettings(*settingsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	output := settings.Log.Output
	if output == "" {
		output = defaultLogFile
	}
	lg, err := logger.New(logger.Config{
		Level:      settings.Log.Level,
		Encoding:   settings.Log.Encoding,
		OutputPath: output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = lg.Sync() }()

	cfg, err := config.NewLoader(*configDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	nav, err := system.BuildNavigator(cfg, assets.NewManifestLoader(cfg.Assets), lg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build game: %v\n", err)
		os.Exit(1)
	}
	lg.Info("Console session started", zap.String("scene", string(nav.ActiveID())))

	p := tea.NewProgram(NewConsoleUI(nav), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
