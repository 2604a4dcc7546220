package dashboard

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/panel"
	"github.com/zjrosen/gitpanes/internal/ui/styles"
	"github.com/zjrosen/gitpanes/internal/ui/unavailable"
)

const (
	// narrowWidth is the width below which only the focused pane is shown.
	narrowWidth = 90
	// listShare is the percentage of the width given to the list pane.
	listShare = 45
)

func tabZone(i int) string      { return "dashboard-tab-" + strconv.Itoa(i) }
func paneZone(id string) string { return "dashboard-pane-" + id }

// status is the transient message shown on the left of the status bar.
type status struct {
	text string
	err  error
}

func newStatus(text string, err error) status { return status{text: text, err: err} }

// eventLog records the last event seen on the bus for the status bar.
type eventLog struct {
	mu    sync.Mutex
	last  event.Event
	count int
	sub   *event.Subscription
}

func watchEvents(bus *event.Bus) *eventLog {
	l := &eventLog{}
	l.sub = bus.OnAll(func(e event.Event) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.last = e
		l.count++
	})
	return l
}

func (l *eventLog) snapshot() (event.Event, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last, l.count
}

func (l *eventLog) close() { l.sub.Unsubscribe() }

// helpKeys joins the focused panel's bindings with the dashboard's.
type helpKeys struct {
	panel []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append(slices.Clone(h.panel), keys.ShortHelp()...)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	groups := keys.FullHelp()
	if len(h.panel) == 0 {
		return groups
	}
	return append([][]key.Binding{h.panel}, groups...)
}

func (m Model) helpView() string {
	var bindings []key.Binding
	if id := m.focusedID(); id != "" {
		if h, ok := m.panels[id].(panel.Helper); ok {
			bindings = h.ShortHelp()
		}
	}
	return m.help.View(helpKeys{panel: bindings})
}

// bodyHeight is what remains for the panes after the tab row, the status
// bar and the help.
func (m Model) bodyHeight() int {
	h := m.height - 1 - lipgloss.Height(m.helpView())
	if m.cfg.ShowStatusBar {
		h--
	}
	return max(h, 0)
}

func (m Model) narrow() bool { return m.width < narrowWidth }

func (m Model) paneWidths(t tab) []int {
	widths := make([]int, len(t.panes))
	if len(t.panes) == 1 || m.narrow() {
		for i := range widths {
			widths[i] = m.width
		}
		return widths
	}
	left := m.width * listShare / 100
	widths[0], widths[1] = left, m.width-left
	return widths
}

// resize sizes every panel for its tab.
func (m Model) resize() Model {
	m.help.Width = m.width
	m.palette = m.palette.setWidth(m.width)
	if m.width == 0 {
		return m
	}
	h := m.bodyHeight()
	for _, t := range m.tabs {
		for i, w := range m.paneWidths(t) {
			id := t.panes[i]
			m.panels[id] = m.panels[id].SetSize(w, h)
		}
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if len(m.tabs) == 0 {
		return unavailable.New(
			"No panels enabled",
			"Every panel is disabled by the panels setting.",
			"Remove the panels list from your config to show them all.",
		).SetSize(m.width, m.height).View()
	}

	rows := []string{m.renderTabs(), m.overlayPalette(m.renderBody())}
	if m.cfg.ShowStatusBar {
		rows = append(rows, m.renderStatus())
	}
	rows = append(rows, m.helpView())
	return panel.Zones.Scan(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := " " + strconv.Itoa(i+1) + " " + t.title + " "
		style := styles.BadgeStyle
		if i == m.active {
			style = styles.ActiveBadgeStyle
		}
		parts = append(parts, panel.Zones.Mark(tabZone(i), style.Render(label)))
	}
	line := strings.Join(parts, " ")
	name := styles.MutedStyle.Render("gitpanes")
	gap := m.width - lipgloss.Width(line) - lipgloss.Width(name)
	if gap < 1 {
		return styles.Truncate(line, m.width)
	}
	return line + strings.Repeat(" ", gap) + name
}

func (m Model) renderBody() string {
	t := m.tabs[m.active]
	if m.narrow() || len(t.panes) == 1 {
		id := m.focusedID()
		return panel.Zones.Mark(paneZone(id), m.panels[id].View())
	}
	views := make([]string, len(t.panes))
	for i, id := range t.panes {
		views[i] = panel.Zones.Mark(paneZone(id), m.panels[id].View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

// overlayPalette draws the palette over the bottom lines of body.
func (m Model) overlayPalette(body string) string {
	if !m.palette.active {
		return body
	}
	lines := strings.Split(body, "\n")
	over := strings.Split(m.palette.View(), "\n")
	start := max(len(lines)-len(over), 0)
	for i, l := range over {
		if start+i < len(lines) {
			lines[start+i] = l
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	var left string
	switch {
	case m.status.err != nil:
		left = styles.ErrorStyle.Render(m.status.text + ": " + m.status.err.Error())
	case m.status.text != "":
		left = styles.SuccessStyle.Render(m.status.text)
	}

	var right string
	if last, n := m.events.snapshot(); n > 0 {
		right = styles.MutedStyle.Render(string(last.Type) + " ← " + last.Source + " · " + strconv.Itoa(n))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return styles.Truncate(left+" "+right, m.width)
	}
	return left + strings.Repeat(" ", gap) + right
}
