// Package styles contains Lip Gloss style definitions, the theme presets and
// the display formatters shared by the panels.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gitpanes/internal/git/domain"
)

// Colors. ApplyTheme overwrites them; read them after the theme is applied.
var (
	TextPrimaryColor     lipgloss.AdaptiveColor
	TextSecondaryColor   lipgloss.AdaptiveColor
	TextMutedColor       lipgloss.AdaptiveColor
	TextDescriptionColor lipgloss.AdaptiveColor

	BorderDefaultColor lipgloss.AdaptiveColor
	BorderFocusColor   lipgloss.AdaptiveColor

	SelectionBackgroundColor lipgloss.AdaptiveColor

	StatusSuccessColor lipgloss.AdaptiveColor
	StatusWarningColor lipgloss.AdaptiveColor
	StatusErrorColor   lipgloss.AdaptiveColor
	StatusInfoColor    lipgloss.AdaptiveColor

	CommitHashColor lipgloss.AdaptiveColor

	PROpenColor   lipgloss.AdaptiveColor
	PRDraftColor  lipgloss.AdaptiveColor
	PRMergedColor lipgloss.AdaptiveColor
	PRClosedColor lipgloss.AdaptiveColor

	FileAddedColor    lipgloss.AdaptiveColor
	FileModifiedColor lipgloss.AdaptiveColor
	FileRemovedColor  lipgloss.AdaptiveColor
	FileRenamedColor  lipgloss.AdaptiveColor
)

// Styles derived from the colors by rebuildStyles.
var (
	TitleStyle       lipgloss.Style
	PrimaryStyle     lipgloss.Style
	SecondaryStyle   lipgloss.Style
	MutedStyle       lipgloss.Style
	DescriptionStyle lipgloss.Style
	SelectedRowStyle lipgloss.Style
	HashStyle        lipgloss.Style

	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	InfoStyle    lipgloss.Style

	PROpenStyle   lipgloss.Style
	PRDraftStyle  lipgloss.Style
	PRMergedStyle lipgloss.Style
	PRClosedStyle lipgloss.Style

	FileAddedStyle    lipgloss.Style
	FileModifiedStyle lipgloss.Style
	FileRemovedStyle  lipgloss.Style
	FileRenamedStyle  lipgloss.Style

	BadgeStyle       lipgloss.Style
	ActiveBadgeStyle lipgloss.Style
	SectionStyle     lipgloss.Style
	HelpKeyStyle     lipgloss.Style
	HelpDescStyle    lipgloss.Style
)

func colorFor(t ColorToken) *lipgloss.AdaptiveColor {
	switch t {
	case TokenTextPrimary:
		return &TextPrimaryColor
	case TokenTextSecondary:
		return &TextSecondaryColor
	case TokenTextMuted:
		return &TextMutedColor
	case TokenTextDescription:
		return &TextDescriptionColor
	case TokenBorderDefault:
		return &BorderDefaultColor
	case TokenBorderFocus:
		return &BorderFocusColor
	case TokenSelectionBackground:
		return &SelectionBackgroundColor
	case TokenStatusSuccess:
		return &StatusSuccessColor
	case TokenStatusWarning:
		return &StatusWarningColor
	case TokenStatusError:
		return &StatusErrorColor
	case TokenStatusInfo:
		return &StatusInfoColor
	case TokenCommitHash:
		return &CommitHashColor
	case TokenPROpen:
		return &PROpenColor
	case TokenPRDraft:
		return &PRDraftColor
	case TokenPRMerged:
		return &PRMergedColor
	case TokenPRClosed:
		return &PRClosedColor
	case TokenFileAdded:
		return &FileAddedColor
	case TokenFileModified:
		return &FileModifiedColor
	case TokenFileRemoved:
		return &FileRemovedColor
	case TokenFileRenamed:
		return &FileRenamedColor
	}
	panic("styles: no color for token " + string(t))
}

func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	PrimaryStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	SecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	DescriptionStyle = lipgloss.NewStyle().Foreground(TextDescriptionColor)
	SelectedRowStyle = lipgloss.NewStyle().Background(SelectionBackgroundColor).Bold(true)
	HashStyle = lipgloss.NewStyle().Foreground(CommitHashColor)

	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(StatusWarningColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	InfoStyle = lipgloss.NewStyle().Foreground(StatusInfoColor)

	PROpenStyle = lipgloss.NewStyle().Foreground(PROpenColor).Bold(true)
	PRDraftStyle = lipgloss.NewStyle().Foreground(PRDraftColor).Bold(true)
	PRMergedStyle = lipgloss.NewStyle().Foreground(PRMergedColor).Bold(true)
	PRClosedStyle = lipgloss.NewStyle().Foreground(PRClosedColor).Bold(true)

	FileAddedStyle = lipgloss.NewStyle().Foreground(FileAddedColor)
	FileModifiedStyle = lipgloss.NewStyle().Foreground(FileModifiedColor)
	FileRemovedStyle = lipgloss.NewStyle().Foreground(FileRemovedColor)
	FileRenamedStyle = lipgloss.NewStyle().Foreground(FileRenamedColor)

	BadgeStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Padding(0, 1)
	ActiveBadgeStyle = lipgloss.NewStyle().
		Foreground(TextPrimaryColor).
		Background(SelectionBackgroundColor).
		Bold(true).
		Padding(0, 1)
	SectionStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor).Bold(true)
	HelpKeyStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	HelpDescStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
}

// PRStatusStyle returns the style for a pull request status label.
func PRStatusStyle(s domain.PRStatus) lipgloss.Style {
	switch s {
	case domain.PRStatusDraft:
		return PRDraftStyle
	case domain.PRStatusMerged:
		return PRMergedStyle
	case domain.PRStatusClosed:
		return PRClosedStyle
	}
	return PROpenStyle
}

func init() {
	if err := ApplyTheme(ThemeConfig{}); err != nil {
		panic(err)
	}
}
