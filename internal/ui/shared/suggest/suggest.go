// Package suggest is a completion popup for single-line inputs.
package suggest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/zjrosen/gitpanes/internal/ui/styles"
)

// Item is one completion candidate.
type Item struct {
	Name        string
	Description string
}

type items []Item

func (it items) String(i int) string { return it[i].Name }
func (it items) Len() int            { return len(it) }

// Model holds the popup state.
type Model struct {
	items []Item

	active       bool
	query        string
	filtered     []Item
	cursor       int
	maxVisible   int
	scrollOffset int
}

// New creates a popup over the given candidates.
func New(candidates ...Item) Model {
	return Model{
		items:      candidates,
		maxVisible: 6,
	}
}

// Active reports whether the popup is showing.
func (m Model) Active() bool { return m.active }

// Query returns the text the candidates are filtered by.
func (m Model) Query() string { return m.query }

// Filtered returns the candidates matching the query, best match first.
func (m Model) Filtered() []Item { return m.filtered }

// Selected returns the highlighted candidate.
func (m Model) Selected() (Item, bool) {
	if !m.active || m.cursor >= len(m.filtered) {
		return Item{}, false
	}
	return m.filtered[m.cursor], true
}

// Activate shows the popup filtered by query.
func (m Model) Activate(query string) Model {
	m.active = true
	m.cursor = 0
	m.scrollOffset = 0
	return m.SetQuery(query)
}

// Deactivate hides the popup.
func (m Model) Deactivate() Model {
	m.active = false
	m.query = ""
	m.cursor = 0
	m.scrollOffset = 0
	m.filtered = nil
	return m
}

// SetQuery re-filters the candidates. An empty query keeps every candidate
// in its original order.
func (m Model) SetQuery(query string) Model {
	m.query = query
	if strings.TrimSpace(query) == "" {
		m.filtered = append([]Item(nil), m.items...)
	} else {
		matches := fuzzy.FindFrom(query, items(m.items))
		m.filtered = make([]Item, len(matches))
		for i, match := range matches {
			m.filtered[i] = m.items[match.Index]
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
		m.scrollOffset = 0
	}
	return m
}

// Next moves the highlight down, wrapping around.
func (m Model) Next() Model {
	if len(m.filtered) == 0 {
		return m
	}
	m.cursor = (m.cursor + 1) % len(m.filtered)
	return m.ensureVisible()
}

// Prev moves the highlight up, wrapping around.
func (m Model) Prev() Model {
	if len(m.filtered) == 0 {
		return m
	}
	m.cursor = (m.cursor - 1 + len(m.filtered)) % len(m.filtered)
	return m.ensureVisible()
}

func (m Model) ensureVisible() Model {
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+m.maxVisible {
		m.scrollOffset = m.cursor - m.maxVisible + 1
	}
	return m
}

// HandleKey moves through or accepts candidates. consumed is false for keys
// the input should handle itself. accepted is set when tab picks a candidate.
func (m Model) HandleKey(msg tea.KeyMsg) (next Model, consumed bool, accepted *Item) {
	if !m.active {
		return m, false, nil
	}

	switch msg.String() {
	case "ctrl+n", "down":
		return m.Next(), true, nil
	case "ctrl+p", "up":
		return m.Prev(), true, nil
	case "tab":
		if it, ok := m.Selected(); ok {
			return m.Deactivate(), true, &it
		}
		return m, true, nil
	}
	return m, false, nil
}

// View renders the popup, or "" when it has nothing to show.
func (m Model) View(width int) string {
	if !m.active || len(m.filtered) == 0 {
		return ""
	}

	end := min(m.scrollOffset+m.maxVisible, len(m.filtered))

	nameWidth := 0
	for i := m.scrollOffset; i < end; i++ {
		nameWidth = max(nameWidth, lipgloss.Width(m.filtered[i].Name))
	}
	inner := max(width-2, 12)

	row := lipgloss.NewStyle().Width(inner)
	selected := row.Background(styles.SelectionBackgroundColor)

	lines := make([]string, 0, end-m.scrollOffset)
	for i := m.scrollOffset; i < end; i++ {
		it := m.filtered[i]
		label := " " + styles.PrimaryStyle.Render(it.Name) +
			strings.Repeat(" ", nameWidth-lipgloss.Width(it.Name)+2) +
			styles.MutedStyle.Render(it.Description)
		label = styles.Truncate(label, inner)
		if i == m.cursor {
			lines = append(lines, selected.Render(label))
		} else {
			lines = append(lines, row.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Render(strings.Join(lines, "\n"))
}
