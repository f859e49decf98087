// Package cli implements the simpgraph command-line interface.
//
// This package provides commands for inspecting DIMACS-style graph files,
// canonicalizing them, rendering them through Graphviz, previewing them in a
// browser, and managing the artifact cache. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - info: Show vertex/edge statistics for a graph file
//   - fmt: Parse and re-emit a graph file in canonical form
//   - render: Generate DOT, SVG, or PNG artifacts
//   - serve: Preview a graph in the browser, re-rendering on each request
//   - cache: Manage the rendered-artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"os"
	"path/filepath"
)

// appName is the application name used for directories and display.
const appName = "simpgraph"

// cacheDir returns the artifact cache directory, honoring XDG_CACHE_HOME.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the configuration directory, honoring XDG_CONFIG_HOME.
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
