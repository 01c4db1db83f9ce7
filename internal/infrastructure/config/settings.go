package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Settings are runtime options that are not part of the authored game data
type Settings struct {
	Log    LogSettings    `yaml:"log"`
	Assets AssetSettings  `yaml:"assets"`
	Window WindowSettings `yaml:"window"`
}

type LogSettings struct {
	Level    string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding string `yaml:"encoding" env:"LOG_ENCODING" env-default:"console"`
	Output   string `yaml:"output" env:"LOG_OUTPUT"` // File path, stdout when empty
}

type AssetSettings struct {
	Dir         string `yaml:"dir" env:"ASSET_DIR" env-default:"assets"`
	Placeholder bool   `yaml:"placeholder" env:"ASSET_PLACEHOLDER" env-default:"false"` // Draw solid boxes instead of PNGs
}

type WindowSettings struct {
	Scale float64 `yaml:"scale" env:"WINDOW_SCALE" env-default:"1"`
}

// LoadSettings reads settings from a YAML file with env overrides.
// When the file cannot be read, settings come from the environment alone.
func LoadSettings(path string) (*Settings, error) {
	var s Settings

	if path != "" {
		if err := cleanenv.ReadConfig(path, &s); err == nil {
			return &s, nil
		}
		s = Settings{}
	}

	if err := cleanenv.ReadEnv(&s); err != nil {
		return nil, fmt.Errorf("failed to read settings from env: %w", err)
	}
	return &s, nil
}
