package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, ApplyTheme(ThemeConfig{}))
	})
}

func TestApplyTheme_Default(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{}))

	require.Equal(t, DefaultPreset.Colors[TokenTextPrimary], TextPrimaryColor.Dark)
	require.Equal(t, DefaultPreset.Light[TokenTextPrimary], TextPrimaryColor.Light)
	require.Equal(t, DefaultPreset.Colors[TokenPRMerged], PRMergedColor.Dark)
}

func TestApplyTheme_Preset(t *testing.T) {
	resetTheme(t)
	Presets["test"] = Preset{
		Name:   "test",
		Colors: map[ColorToken]string{TokenCommitHash: "#FF0000"},
	}
	defer delete(Presets, "test")

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "test"}))
	require.Equal(t, "#FF0000", CommitHashColor.Dark)
	require.Equal(t, "#FF0000", CommitHashColor.Light, "dark color used when no light variant")
	// Tokens missing from the preset fall back to the default palette.
	require.Equal(t, DefaultPreset.Colors[TokenFileAdded], FileAddedColor.Dark)
}

func TestApplyTheme_OverrideWinsOverPreset(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{
		Preset: "nord",
		Colors: map[string]string{"pr.open": "#00FF00"},
	}))

	require.Equal(t, "#00FF00", PROpenColor.Dark)
	require.Equal(t, "#00FF00", PROpenColor.Light)
	require.Equal(t, Presets["nord"].Colors[TokenPRClosed], PRClosedColor.Dark)
}

func TestApplyTheme_RebuildsStyles(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"status.error": "#123456"}}))

	fg, ok := ErrorStyle.GetForeground().(lipgloss.AdaptiveColor)
	require.True(t, ok)
	require.Equal(t, "#123456", fg.Dark)
}

func TestApplyTheme_Errors(t *testing.T) {
	resetTheme(t)
	tests := []struct {
		name string
		cfg  ThemeConfig
		msg  string
	}{
		{"unknown preset", ThemeConfig{Preset: "nonexistent"}, "unknown theme preset"},
		{"unknown token", ThemeConfig{Colors: map[string]string{"invalid.token": "#FF0000"}}, "unknown color token"},
		{"bad hex", ThemeConfig{Colors: map[string]string{"text.primary": "not-a-color"}}, "invalid hex color"},
		{"bad mode", ThemeConfig{Mode: "sepia"}, "unknown theme mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyTheme(tt.cfg)
			require.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestApplyTheme_ForcedModes(t *testing.T) {
	resetTheme(t)
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(true) })

	require.NoError(t, ApplyTheme(ThemeConfig{Mode: ModeLight}))
	require.False(t, lipgloss.HasDarkBackground())

	require.NoError(t, ApplyTheme(ThemeConfig{Mode: ModeDark}))
	require.True(t, lipgloss.HasDarkBackground())
}

func TestIsValidToken(t *testing.T) {
	for _, token := range Tokens() {
		require.True(t, isValidToken(token), token)
	}
	require.False(t, isValidToken("invalid.token"))
	require.False(t, isValidToken(""))
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"#FFF", true},
		{"#abc", true},
		{"#AbCdEf", true},
		{"FFFFFF", false},
		{"#FF", false},
		{"#FFFFFFF", false},
		{"#GGGGGG", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			require.Equal(t, tt.valid, isValidHexColor(tt.color))
		})
	}
}
