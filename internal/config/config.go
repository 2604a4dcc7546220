// Package config provides configuration types and defaults for gitpanes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/log"
	"github.com/zjrosen/gitpanes/internal/tracing"
	"github.com/zjrosen/gitpanes/internal/ui/styles"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration options for gitpanes.
type Config struct {
	// Fixtures is the YAML dataset to serve. Empty uses the built-in demo.
	Fixtures            string                  `mapstructure:"fixtures"`
	AutoRefresh         bool                    `mapstructure:"auto_refresh"`
	AutoRefreshDebounce time.Duration           `mapstructure:"auto_refresh_debounce"`
	Panels              []string                `mapstructure:"panels"`
	Commits             CommitsConfig           `mapstructure:"commits"`
	PullRequests        PullRequestsConfig      `mapstructure:"pull_requests"`
	GitConfig           GitConfigConfig         `mapstructure:"git_config"`
	Cache               CacheConfig             `mapstructure:"cache"`
	UI                  UIConfig                `mapstructure:"ui"`
	Theme               ThemeConfig             `mapstructure:"theme"`
	Actions             map[string]ActionConfig `mapstructure:"actions"`
	Log                 LogConfig               `mapstructure:"log"`
	Tracing             TracingConfig           `mapstructure:"tracing"`
}

// CommitsConfig configures the commit history panel.
type CommitsConfig struct {
	Limit int `mapstructure:"limit"`
}

// PullRequestsConfig configures the pull request list panel.
type PullRequestsConfig struct {
	Filter string `mapstructure:"filter"` // open, closed or all
}

// GitConfigConfig configures the git config panel.
type GitConfigConfig struct {
	View string `mapstructure:"view"` // summary or detailed
}

// CacheConfig configures the commit detail cache.
type CacheConfig struct {
	DetailTTL time.Duration `mapstructure:"detail_ttl"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	Mouse         bool   `mapstructure:"mouse"`
	Markdown      string `mapstructure:"markdown"` // glamour style, "plain" disables styling
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Run 'gitpanes themes' for the list.
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. Empty or "auto" uses terminal detection.
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Keys use dot notation: "text.primary", "status.error", etc.
	Colors map[string]string `mapstructure:"colors"`
}

// Styles converts the theme section for styles.ApplyTheme.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{Preset: t.Preset, Mode: t.Mode, Colors: t.Colors}
}

// ActionConfig is a user-defined key bound to a shell command. The command
// is a text/template over the selected commit or pull request.
type ActionConfig struct {
	Key         string `mapstructure:"key"`
	Command     string `mapstructure:"command"`
	Description string `mapstructure:"description"`
}

// LogConfig configures the debug log.
type LogConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Level    string `mapstructure:"level"`
	File     string `mapstructure:"file"`
	MaxFiles int    `mapstructure:"max_files"`
}

// Options converts the log section for log.Init. dir is used when no file
// is configured.
func (l LogConfig) Options(dir string) log.Options {
	return log.Options{
		Enabled:  l.Enabled,
		Level:    l.Level,
		File:     l.File,
		Dir:      dir,
		MaxFiles: l.MaxFiles,
	}
}

// TracingConfig configures OpenTelemetry tracing.
type TracingConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Exporter string `mapstructure:"exporter"`
	File     string `mapstructure:"file"`
	Endpoint string `mapstructure:"endpoint"`
}

// Tracing converts the tracing section for tracing.Setup.
func (t TracingConfig) Tracing() tracing.Config {
	return tracing.Config{
		Enabled:  t.Enabled,
		Exporter: t.Exporter,
		File:     t.File,
		Endpoint: t.Endpoint,
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		AutoRefresh:         true,
		AutoRefreshDebounce: 200 * time.Millisecond,
		Commits:             CommitsConfig{Limit: 25},
		PullRequests:        PullRequestsConfig{Filter: string(event.FilterOpen)},
		GitConfig:           GitConfigConfig{View: string(event.ViewSummary)},
		Cache:               CacheConfig{DetailTTL: 10 * time.Minute},
		UI: UIConfig{
			ShowStatusBar: true,
			Mouse:         true,
			Markdown:      "auto",
		},
		Log: LogConfig{
			Level:    "info",
			MaxFiles: 5,
		},
		Tracing: TracingConfig{Exporter: "file"},
	}
}

// Validate checks the configuration and returns every problem found.
func Validate(cfg Config) error {
	var errs []error
	if cfg.Commits.Limit < 0 {
		errs = append(errs, fmt.Errorf("commits.limit: must not be negative, got %d", cfg.Commits.Limit))
	}
	if f := event.PRFilter(cfg.PullRequests.Filter); f != "" && !f.Valid() {
		errs = append(errs, fmt.Errorf("pull_requests.filter: %q is not open, closed or all", cfg.PullRequests.Filter))
	}
	if v := event.ViewMode(cfg.GitConfig.View); v != "" && !v.Valid() {
		errs = append(errs, fmt.Errorf("git_config.view: %q is not summary or detailed", cfg.GitConfig.View))
	}
	if cfg.Cache.DetailTTL < 0 {
		errs = append(errs, fmt.Errorf("cache.detail_ttl: must not be negative"))
	}
	if cfg.AutoRefreshDebounce < 0 {
		errs = append(errs, fmt.Errorf("auto_refresh_debounce: must not be negative"))
	}
	if err := ValidateActions(cfg.Actions); err != nil {
		errs = append(errs, err)
	}
	switch cfg.Tracing.Exporter {
	case "", "file", "otlp":
	default:
		errs = append(errs, fmt.Errorf("tracing.exporter: %q is not file or otlp", cfg.Tracing.Exporter))
	}
	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: %q is not debug, info, warn or error", cfg.Log.Level))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ValidateActions checks user actions for missing fields and key clashes.
func ValidateActions(actions map[string]ActionConfig) error {
	var errs []error
	keys := make(map[string]string, len(actions))
	for name, a := range actions {
		if a.Key == "" {
			errs = append(errs, fmt.Errorf("actions.%s: key is required", name))
			continue
		}
		if a.Command == "" {
			errs = append(errs, fmt.Errorf("actions.%s: command is required", name))
		}
		k := NormalizeKey(a.Key)
		if other, ok := keys[k]; ok {
			errs = append(errs, fmt.Errorf("actions.%s: key %q already bound by %s", name, a.Key, other))
		}
		keys[k] = name
	}
	return errors.Join(errs...)
}

// NormalizeKey canonicalizes a key binding so "Ctrl+X" and "ctrl+x" match.
// Single characters keep their case; "G" and "g" are different keys.
func NormalizeKey(k string) string {
	if k == " " {
		return k
	}
	k = strings.TrimSpace(k)
	if k == "" {
		return ""
	}
	parts := strings.Split(k, "+")
	for i, p := range parts {
		if i < len(parts)-1 || len(p) > 1 {
			parts[i] = strings.ToLower(p)
		}
	}
	last := parts[len(parts)-1]
	if last == "space" {
		parts[len(parts)-1] = " "
	}
	return strings.Join(parts, "+")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# gitpanes configuration

# YAML dataset with commits, pull requests and git config.
# Leave empty to browse the built-in demo data.
# fixtures: ./fixtures.yaml

# Reload the fixtures file when it changes
auto_refresh: true
auto_refresh_debounce: 200ms

# Panels to show, by id (default: all)
# panels: [commit-history, commit-detail, pull-requests, pr-detail, git-config]

commits:
  limit: 25          # commits shown in the history panel

pull_requests:
  filter: open       # open, closed or all

git_config:
  view: summary      # summary or detailed

cache:
  detail_ttl: 10m    # how long commit details are cached

ui:
  show_status_bar: true
  mouse: true
  markdown: auto     # glamour style (auto, dark, light, notty) or plain

# Theme configuration
theme:
  # Use a preset (run 'gitpanes themes' to see available presets):
  # preset: catppuccin-mocha
  #
  # Force light or dark colors instead of detecting the terminal:
  # mode: dark
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   text.primary: "#FFFFFF"
  #   pr.merged: "#A371F7"

# User actions: a key runs a shell command for the selected item.
# Commit fields: {{.Hash}} {{.ShortHash}} {{.Subject}} {{.Author}}
# Pull request fields: {{.Number}} {{.Title}} {{.URL}} {{.Head}} {{.Base}}
# actions:
#   show:
#     key: "o"
#     command: "git show {{.Hash}} | less"
#     description: "Show commit in pager"
#   browse:
#     key: "b"
#     command: "open {{.URL}}"
#     description: "Open pull request in browser"

log:
  enabled: false
  level: info
  # file: /tmp/gitpanes.log
  max_files: 5

tracing:
  enabled: false
  exporter: file     # file or otlp
  # file: /tmp/gitpanes-traces.json
  # endpoint: localhost:4317
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
