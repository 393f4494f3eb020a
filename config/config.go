// Package config loads editor preferences from a YAML file. This is shell
// configuration (colors, mode defaults), not grid-state persistence.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme holds the editor colors as "#rrggbb" strings.
type Theme struct {
	Background string `yaml:"background"`
	Cell       string `yaml:"cell"`
	Hover      string `yaml:"hover"`
	Selected   string `yaml:"selected"`
	Multi      string `yaml:"multi"`
	Marquee    string `yaml:"marquee"`
}

// Config is the editor configuration.
type Config struct {
	EditMode   bool  `yaml:"edit_mode"`
	SafeDelete bool  `yaml:"safe_delete"`
	Debug      bool  `yaml:"debug"`
	Theme      Theme `yaml:"theme"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		EditMode:   true,
		SafeDelete: true,
		Theme: Theme{
			Background: "#1e2228",
			Cell:       "#3c78ff",
			Hover:      "#ffffff",
			Selected:   "#ffd23c",
			Multi:      "#ff8c3c",
			Marquee:    "#64c8ff",
		},
	}
}

// Load reads the config at path. A missing file yields the defaults with no
// error; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
