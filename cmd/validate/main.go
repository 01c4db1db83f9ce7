// Command validate checks the game data files for authoring mistakes and,
// optionally, that recorded sessions still play back the same way.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/younwookim/escape/internal/application/replay"
	"github.com/younwookim/escape/internal/application/system"
	"github.com/younwookim/escape/internal/infrastructure/assets"
	"github.com/younwookim/escape/internal/infrastructure/config"
)

var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")). // green
		Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

func main() {
	configDir := flag.String("configs", "cmd/game/configs", "Directory holding the game data files")
	flag.Parse()

	os.Exit(run(os.Stdout, *configDir, flag.Args()))
}

// run validates the data in dir and verifies each replay file.
// It returns the process exit code.
func run(w io.Writer, dir string, replays []string) int {
	cfg, err := config.NewLoader(dir).LoadAll()
	if err != nil {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("load: %v", err)))
		return 2
	}

	failed := false

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s (%d scenes, %d pointer rules, %d key rules)",
		dir, len(cfg.Scenes.Scenes), len(cfg.Rules.Pointer), len(cfg.Rules.Keys))))

	nav, err := system.BuildNavigator(cfg, assets.NewManifestLoader(cfg.Assets), zap.NewNop())
	if err != nil {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("build: %v", err)))
		return 1
	}

	issues := system.Validate(nav.Graph(), nav.Rules())
	for _, issue := range issues {
		fmt.Fprintln(w, errorStyle.Render("  "+issue.Error()))
	}
	if len(issues) > 0 {
		failed = true
	} else {
		fmt.Fprintln(w, okStyle.Render("  data ok"))
	}

	for _, path := range replays {
		if err := verifyReplay(cfg, path); err != nil {
			fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("  %s: %v", path, err)))
			failed = true
			continue
		}
		fmt.Fprintln(w, okStyle.Render(fmt.Sprintf("  %s ok", path)))
	}

	if failed {
		return 1
	}
	return 0
}

// verifyReplay plays a recording on a fresh navigator
func verifyReplay(cfg *config.GameConfig, path string) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	nav, err := system.BuildNavigator(cfg, assets.NewManifestLoader(cfg.Assets), zap.NewNop())
	if err != nil {
		return err
	}
	return replay.Verify(*data, system.NewInputRouter(nav), nav)
}
