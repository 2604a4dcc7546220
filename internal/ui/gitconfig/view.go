package gitconfig

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/panel"
	"github.com/zjrosen/gitpanes/internal/slice"
	"github.com/zjrosen/gitpanes/internal/ui/shared/table"
	"github.com/zjrosen/gitpanes/internal/ui/styles"
	"github.com/zjrosen/gitpanes/internal/ui/unavailable"
)

const labelWidth = 18

var entryColumns = []table.ColumnConfig{
	{Key: "scope", Header: "Scope", Width: 8},
	{Key: "key", Header: "Key", MinWidth: 10, MaxWidth: 36},
	{Key: "value", Header: "Value", MinWidth: 8},
}

// Indicator renders the tri-state of a boolean setting.
func Indicator(s domain.BoolState) string {
	switch s {
	case domain.BoolEnabled:
		return styles.SuccessStyle.Render("✓ enabled")
	case domain.BoolDisabled:
		return styles.ErrorStyle.Render("✗ disabled")
	}
	return styles.MutedStyle.Render("– not configured")
}

// View implements panel.Component.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w, h := styles.InnerSize(m.width, m.height)
	return styles.Frame{
		Title:   "Git Config",
		Badge:   string(m.mode),
		Width:   m.width,
		Height:  m.height,
		Focused: m.focused,
	}.Render(m.body(w, h))
}

// body picks the display state: unavailable, loading, error, content.
func (m Model) body(w, h int) string {
	s, ok := slice.Get(m.deps.Store, slice.GitConfig)
	switch {
	case !ok:
		return unavailable.ForSlice("Git config").SetSize(w, h).View()
	case s.Loading:
		return m.spinner.View() + " " + styles.MutedStyle.Render("Loading git config…")
	case s.Failed() && !s.HasData:
		return styles.ErrorStyle.Render("Failed to load git config: " + s.Err)
	case !s.HasData:
		return styles.MutedStyle.Render("No git configuration")
	}

	vp := m.viewport
	var prefix string
	if s.Failed() {
		prefix = styles.ErrorStyle.Render("Failed to load git config: "+s.Err) + "\n"
		vp.Height = max(vp.Height-1, 1)
	}
	content, _ := m.render(s.Data, w)
	vp.SetContent(content)
	return prefix + vp.View()
}

// render returns the content for the current mode and, in summary mode, the
// line index of every section header.
func (m Model) render(cfg domain.GitConfig, width int) (string, []int) {
	if m.mode == event.ViewDetailed {
		return m.renderDetailed(cfg, width), nil
	}
	return m.renderSummary(cfg, width)
}

func (m Model) renderSummary(cfg domain.GitConfig, width int) (string, []int) {
	var lines []string
	headers := make([]int, 0, len(sectionOrder))

	for i, s := range buildSections(cfg) {
		headers = append(headers, len(lines))

		arrow := "▸"
		if m.expanded[s.id] {
			arrow = "▾"
		}
		title := s.title
		if s.count >= 0 {
			title = fmt.Sprintf("%s (%d)", title, s.count)
		}
		header := arrow + " " + title
		if i == m.cursor {
			header = styles.SelectedRowStyle.Render(header)
		} else {
			header = styles.SectionStyle.Render(header)
		}
		lines = append(lines, panel.Zones.Mark(m.sectionZone(s.id), header))

		if !m.expanded[s.id] {
			continue
		}
		if len(s.rows) == 0 {
			lines = append(lines, "  "+styles.MutedStyle.Render("none"))
		}
		for _, r := range s.rows {
			lines = append(lines, renderRow(r, width))
		}
	}
	return strings.Join(lines, "\n"), headers
}

func renderRow(r row, width int) string {
	label := r.label
	if r.current {
		label = "* " + label
	}
	prefix := "  " + styles.MutedStyle.Render(fmt.Sprintf("%-*s", labelWidth, styles.Truncate(label, labelWidth)))

	var value string
	switch {
	case r.boolean:
		value = Indicator(r.state)
	case r.value == "":
		value = styles.MutedStyle.Render("not set")
	default:
		value = styles.Truncate(r.value, max(width-labelWidth-3, 1))
	}
	if r.current {
		value = styles.SuccessStyle.Render(value)
	}
	return prefix + " " + value
}

func (m Model) renderDetailed(cfg domain.GitConfig, width int) string {
	if len(cfg.AllEntries) == 0 {
		return styles.MutedStyle.Render("No entries")
	}
	layout := table.NewLayout(entryColumns, max(width, 1))
	lines := []string{layout.Header(styles.MutedStyle)}
	for _, e := range cfg.AllEntries {
		lines = append(lines, layout.Row(map[string]table.Cell{
			"scope": table.Styled("["+string(e.Scope)+"]", scopeStyle(e.Scope)),
			"key":   table.Styled(e.Key, styles.SecondaryStyle),
			"value": table.Text(e.Value),
		}))
	}
	return strings.Join(lines, "\n")
}

func scopeStyle(s domain.ConfigScope) lipgloss.Style {
	switch s {
	case domain.ConfigScopeLocal:
		return styles.InfoStyle
	case domain.ConfigScopeGlobal:
		return styles.WarningStyle
	}
	return styles.MutedStyle
}
