package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Scenes  *ScenesConfig
	Rules   *RulesConfig
	Assets  *AssetsConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.readJSON("display.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadScenes loads scenes.json
func (l *Loader) LoadScenes() (*ScenesConfig, error) {
	var cfg ScenesConfig
	if err := l.readJSON("scenes.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadRules loads rules.json
func (l *Loader) LoadRules() (*RulesConfig, error) {
	var cfg RulesConfig
	if err := l.readJSON("rules.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAssets loads the asset size manifest assets.json
func (l *Loader) LoadAssets() (*AssetsConfig, error) {
	var cfg AssetsConfig
	if err := l.readJSON("assets.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads every configuration file
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	scenes, err := l.LoadScenes()
	if err != nil {
		return nil, err
	}

	rules, err := l.LoadRules()
	if err != nil {
		return nil, err
	}

	assets, err := l.LoadAssets()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display: display,
		Scenes:  scenes,
		Rules:   rules,
		Assets:  assets,
	}, nil
}
