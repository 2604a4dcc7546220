// Package unavailable renders the informational state shown when the host
// does not provide the data a view needs.
package unavailable

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gitpanes/internal/ui/styles"
)

// Model is a centered notice. Used standalone it quits on q, esc or ctrl+c.
type Model struct {
	title   string
	message string
	hints   []string
	width   int
	height  int
}

// New creates a notice.
func New(title, message string, hints ...string) Model {
	return Model{title: title, message: message, hints: hints}
}

// ForSlice is the notice panels show when their slice is missing.
func ForSlice(what string) Model {
	return New(
		what+" unavailable",
		"The host does not provide "+what+" for this workspace.",
	)
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window sizing and the quit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// SetSize updates the view dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the notice centered in the available space.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(m.title))
	if m.message != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.DescriptionStyle.Width(min(m.width, 60)).Align(lipgloss.Center).Render(m.message))
	}
	for i, hint := range m.hints {
		if i == 0 {
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Italic(true).Render(hint))
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}
