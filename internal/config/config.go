// Package config handles vic3tool configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all tool settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Color   ColorConfig   `yaml:"color"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig lists the game data files to load, per record kind. Paths are
// relative to Root; a file present in a mod directory shadows the game's.
type DataConfig struct {
	Root               string   `yaml:"root"` // game directory
	Mods               []string `yaml:"mods"` // later mods take priority
	Cultures           []string `yaml:"cultures"`
	Religions          []string `yaml:"religions"`
	CountryDefinitions []string `yaml:"country_definitions"`
	CountryTypes       []string `yaml:"country_types"`
	CountryRanks       []string `yaml:"country_ranks"`
	States             []string `yaml:"states"`
	Workers            int      `yaml:"workers"` // files decoded concurrently
}

// ColorConfig holds color encoding settings.
type ColorConfig struct {
	TagRGB bool `yaml:"tag_rgb"` // write integer RGB as rgb { r g b }
}

// WatchConfig holds file watching settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config pointing at the vanilla file layout.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Root:               ".",
			Cultures:           []string{"common/cultures/00_cultures.txt"},
			Religions:          []string{"common/religions/religion.txt"},
			CountryDefinitions: []string{"common/country_definitions/00_countries.txt"},
			CountryTypes:       []string{"common/country_types/00_country_types.txt"},
			CountryRanks:       []string{"common/country_ranks/00_country_ranks.txt"},
			States:             []string{"history/states/00_states.txt"},
			Workers:            4,
		},
		Color: ColorConfig{
			TagRGB: false,
		},
		Watch: WatchConfig{
			Debounce: 250 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	if c.Data.Root == "" {
		return fmt.Errorf("data.root: must not be empty")
	}
	if c.Data.Workers < 1 {
		return fmt.Errorf("data.workers: must be at least 1, got %d", c.Data.Workers)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce: must not be negative, got %v", c.Watch.Debounce)
	}
	return nil
}
