package styles

import (
	"fmt"
	"maps"
	"regexp"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorToken names a themable color.
type ColorToken string

const (
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextDescription ColorToken = "text.description"

	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	TokenSelectionBackground ColorToken = "selection.background"

	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"
	TokenStatusInfo    ColorToken = "status.info"

	TokenCommitHash ColorToken = "commit.hash"

	TokenPROpen   ColorToken = "pr.open"
	TokenPRDraft  ColorToken = "pr.draft"
	TokenPRMerged ColorToken = "pr.merged"
	TokenPRClosed ColorToken = "pr.closed"

	TokenFileAdded    ColorToken = "file.added"
	TokenFileModified ColorToken = "file.modified"
	TokenFileRemoved  ColorToken = "file.removed"
	TokenFileRenamed  ColorToken = "file.renamed"
)

var allTokens = []ColorToken{
	TokenTextPrimary, TokenTextSecondary, TokenTextMuted, TokenTextDescription,
	TokenBorderDefault, TokenBorderFocus,
	TokenSelectionBackground,
	TokenStatusSuccess, TokenStatusWarning, TokenStatusError, TokenStatusInfo,
	TokenCommitHash,
	TokenPROpen, TokenPRDraft, TokenPRMerged, TokenPRClosed,
	TokenFileAdded, TokenFileModified, TokenFileRemoved, TokenFileRenamed,
}

// Tokens returns every color token.
func Tokens() []ColorToken {
	return slices.Clone(allTokens)
}

func isValidToken(t ColorToken) bool {
	return slices.Contains(allTokens, t)
}

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func isValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// Theme modes for ThemeConfig.Mode.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// ThemeConfig selects a preset, a background mode and per-token overrides.
type ThemeConfig struct {
	Preset string            `mapstructure:"preset"`
	Mode   string            `mapstructure:"mode"`
	Colors map[string]string `mapstructure:"colors"`
}

// Preset is a named palette. Colors are used on dark backgrounds; Light
// entries replace them on light backgrounds when present.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
	Light       map[ColorToken]string
}

// ApplyTheme resolves cfg into the package colors and rebuilds the styles.
// Precedence: explicit overrides, then the preset, then the default preset.
func ApplyTheme(cfg ThemeConfig) error {
	preset := DefaultPreset
	if cfg.Preset != "" {
		p, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset %q", cfg.Preset)
		}
		preset = p
	}

	overrides := make(map[ColorToken]string, len(cfg.Colors))
	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token %q", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color %q for %s", value, key)
		}
		overrides[token] = value
	}

	switch cfg.Mode {
	case "":
	case ModeAuto:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	case ModeDark:
		lipgloss.SetHasDarkBackground(true)
	case ModeLight:
		lipgloss.SetHasDarkBackground(false)
	default:
		return fmt.Errorf("unknown theme mode %q", cfg.Mode)
	}

	for _, token := range allTokens {
		c := resolveColor(token, preset, overrides)
		*colorFor(token) = c
	}

	rebuildStyles()
	return nil
}

func resolveColor(token ColorToken, preset Preset, overrides map[ColorToken]string) lipgloss.AdaptiveColor {
	if v, ok := overrides[token]; ok {
		return lipgloss.AdaptiveColor{Light: v, Dark: v}
	}

	dark, ok := preset.Colors[token]
	if !ok {
		dark = DefaultPreset.Colors[token]
	}
	light, ok := preset.Light[token]
	if !ok {
		light = dark
	}
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// PresetNames returns the preset names sorted alphabetically.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}
