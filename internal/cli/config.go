package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults loaded from config.toml.
// Command-line flags always take precedence over config values.
type Config struct {
	Render RenderConfig `toml:"render"`
}

// RenderConfig supplies defaults for the render and serve commands.
type RenderConfig struct {
	// Formats are the default output formats when --format is not given.
	Formats []string `toml:"formats"`

	// Name is the default DOT graph identifier.
	Name string `toml:"name"`

	// Attrs are graph-level Graphviz attributes applied to every render.
	// Attributes given on the command line override matching keys.
	Attrs map[string]string `toml:"attrs"`
}

// loadConfig reads config.toml from the user config directory.
// A missing file is not an error - it yields a zero Config.
func loadConfig() (Config, error) {
	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}

	path := filepath.Join(dir, "config.toml")
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// mergeAttrs layers flag-provided attributes over config defaults.
// Returns nil when both inputs are empty.
func mergeAttrs(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
