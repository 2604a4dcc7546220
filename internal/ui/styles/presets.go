package styles

// DefaultPreset is used when no preset is configured.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Muted palette that adapts to light and dark terminals",
	Colors: map[ColorToken]string{
		TokenTextPrimary:         "#E2E4E9",
		TokenTextSecondary:       "#B4B9C6",
		TokenTextMuted:           "#7A8091",
		TokenTextDescription:     "#9AA0AE",
		TokenBorderDefault:       "#4B5263",
		TokenBorderFocus:         "#7AA2F7",
		TokenSelectionBackground: "#2F3546",
		TokenStatusSuccess:       "#73C991",
		TokenStatusWarning:       "#E5C07B",
		TokenStatusError:         "#F07178",
		TokenStatusInfo:          "#61AFEF",
		TokenCommitHash:          "#D19A66",
		TokenPROpen:              "#73C991",
		TokenPRDraft:             "#7A8091",
		TokenPRMerged:            "#B48EAD",
		TokenPRClosed:            "#F07178",
		TokenFileAdded:           "#73C991",
		TokenFileModified:        "#E5C07B",
		TokenFileRemoved:         "#F07178",
		TokenFileRenamed:         "#61AFEF",
	},
	Light: map[ColorToken]string{
		TokenTextPrimary:         "#1F2328",
		TokenTextSecondary:       "#424A53",
		TokenTextMuted:           "#6E7781",
		TokenTextDescription:     "#57606A",
		TokenBorderDefault:       "#D0D7DE",
		TokenBorderFocus:         "#0969DA",
		TokenSelectionBackground: "#DDF4FF",
		TokenStatusSuccess:       "#1A7F37",
		TokenStatusWarning:       "#9A6700",
		TokenStatusError:         "#CF222E",
		TokenStatusInfo:          "#0969DA",
		TokenCommitHash:          "#953800",
		TokenPROpen:              "#1A7F37",
		TokenPRDraft:             "#6E7781",
		TokenPRMerged:            "#8250DF",
		TokenPRClosed:            "#CF222E",
		TokenFileAdded:           "#1A7F37",
		TokenFileModified:        "#9A6700",
		TokenFileRemoved:         "#CF222E",
		TokenFileRenamed:         "#0969DA",
	},
}

// Presets holds the built-in palettes by name.
var Presets = map[string]Preset{
	"default": DefaultPreset,
	"catppuccin-mocha": {
		Name:        "catppuccin-mocha",
		Description: "Soothing pastel theme, dark variant",
		Colors: map[ColorToken]string{
			TokenTextPrimary:         "#CDD6F4",
			TokenTextSecondary:       "#BAC2DE",
			TokenTextMuted:           "#6C7086",
			TokenTextDescription:     "#A6ADC8",
			TokenBorderDefault:       "#45475A",
			TokenBorderFocus:         "#89B4FA",
			TokenSelectionBackground: "#313244",
			TokenStatusSuccess:       "#A6E3A1",
			TokenStatusWarning:       "#F9E2AF",
			TokenStatusError:         "#F38BA8",
			TokenStatusInfo:          "#89DCEB",
			TokenCommitHash:          "#FAB387",
			TokenPROpen:              "#A6E3A1",
			TokenPRDraft:             "#6C7086",
			TokenPRMerged:            "#CBA6F7",
			TokenPRClosed:            "#F38BA8",
			TokenFileAdded:           "#A6E3A1",
			TokenFileModified:        "#F9E2AF",
			TokenFileRemoved:         "#F38BA8",
			TokenFileRenamed:         "#89DCEB",
		},
	},
	"dracula": {
		Name:        "dracula",
		Description: "Dark theme with vivid accents",
		Colors: map[ColorToken]string{
			TokenTextPrimary:         "#F8F8F2",
			TokenTextSecondary:       "#E0E0E0",
			TokenTextMuted:           "#6272A4",
			TokenTextDescription:     "#BFBFBF",
			TokenBorderDefault:       "#44475A",
			TokenBorderFocus:         "#BD93F9",
			TokenSelectionBackground: "#44475A",
			TokenStatusSuccess:       "#50FA7B",
			TokenStatusWarning:       "#F1FA8C",
			TokenStatusError:         "#FF5555",
			TokenStatusInfo:          "#8BE9FD",
			TokenCommitHash:          "#FFB86C",
			TokenPROpen:              "#50FA7B",
			TokenPRDraft:             "#6272A4",
			TokenPRMerged:            "#BD93F9",
			TokenPRClosed:            "#FF5555",
			TokenFileAdded:           "#50FA7B",
			TokenFileModified:        "#F1FA8C",
			TokenFileRemoved:         "#FF5555",
			TokenFileRenamed:         "#8BE9FD",
		},
	},
	"nord": {
		Name:        "nord",
		Description: "Arctic, north-bluish palette",
		Colors: map[ColorToken]string{
			TokenTextPrimary:         "#ECEFF4",
			TokenTextSecondary:       "#E5E9F0",
			TokenTextMuted:           "#616E88",
			TokenTextDescription:     "#D8DEE9",
			TokenBorderDefault:       "#4C566A",
			TokenBorderFocus:         "#88C0D0",
			TokenSelectionBackground: "#3B4252",
			TokenStatusSuccess:       "#A3BE8C",
			TokenStatusWarning:       "#EBCB8B",
			TokenStatusError:         "#BF616A",
			TokenStatusInfo:          "#81A1C1",
			TokenCommitHash:          "#D08770",
			TokenPROpen:              "#A3BE8C",
			TokenPRDraft:             "#616E88",
			TokenPRMerged:            "#B48EAD",
			TokenPRClosed:            "#BF616A",
			TokenFileAdded:           "#A3BE8C",
			TokenFileModified:        "#EBCB8B",
			TokenFileRemoved:         "#BF616A",
			TokenFileRenamed:         "#81A1C1",
		},
	},
	"high-contrast": {
		Name:        "high-contrast",
		Description: "Maximum legibility",
		Colors: map[ColorToken]string{
			TokenTextPrimary:         "#FFFFFF",
			TokenTextSecondary:       "#FFFFFF",
			TokenTextMuted:           "#C0C0C0",
			TokenTextDescription:     "#E0E0E0",
			TokenBorderDefault:       "#FFFFFF",
			TokenBorderFocus:         "#FFFF00",
			TokenSelectionBackground: "#0000AA",
			TokenStatusSuccess:       "#00FF00",
			TokenStatusWarning:       "#FFFF00",
			TokenStatusError:         "#FF0000",
			TokenStatusInfo:          "#00FFFF",
			TokenCommitHash:          "#FFAA00",
			TokenPROpen:              "#00FF00",
			TokenPRDraft:             "#C0C0C0",
			TokenPRMerged:            "#FF00FF",
			TokenPRClosed:            "#FF0000",
			TokenFileAdded:           "#00FF00",
			TokenFileModified:        "#FFFF00",
			TokenFileRemoved:         "#FF0000",
			TokenFileRenamed:         "#00FFFF",
		},
		Light: map[ColorToken]string{
			TokenTextPrimary:   "#000000",
			TokenTextSecondary: "#000000",
			TokenTextMuted:     "#303030",
			TokenBorderDefault: "#000000",
			TokenBorderFocus:   "#0000FF",
		},
	},
}
