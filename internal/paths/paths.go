// Package paths resolves the directories and files gitpanes reads and writes.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "gitpanes"

// LocalConfigName is the per-repository config file, looked up in the
// working directory before the user config.
const LocalConfigName = ".gitpanes.yaml"

// FixturesName is the dataset file looked up when a directory is given.
const FixturesName = "gitpanes-fixtures.yaml"

// ConfigDir returns $XDG_CONFIG_HOME/gitpanes, falling back to ~/.config/gitpanes.
func ConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// StateDir returns $XDG_STATE_HOME/gitpanes, falling back to
// ~/.local/state/gitpanes. Log files live here.
func StateDir() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", appName), nil
}

// DefaultConfigPath returns the user config file path.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ResolveFixtures normalizes a fixtures setting. Empty stays empty (the
// built-in demo). A path ending in .yaml or .yml is a file; anything else
// is a directory holding FixturesName. A leading ~/ expands to home.
func ResolveFixtures(path string) string {
	if path == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(path, "~"+string(filepath.Separator)); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}
	cleaned := filepath.Clean(path)
	switch strings.ToLower(filepath.Ext(cleaned)) {
	case ".yaml", ".yml":
		return cleaned
	}
	return filepath.Join(cleaned, FixturesName)
}
