package commithistory

import (
	"fmt"
	"strings"

	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/panel"
	"github.com/zjrosen/gitpanes/internal/slice"
	"github.com/zjrosen/gitpanes/internal/ui/shared/table"
	"github.com/zjrosen/gitpanes/internal/ui/styles"
	"github.com/zjrosen/gitpanes/internal/ui/unavailable"
)

const cursorWidth = 2

var columns = []table.ColumnConfig{
	{Key: "hash", Header: "Hash", Width: domain.ShortHashLen},
	{Key: "subject", Header: "Subject", MinWidth: 12},
	{Key: "author", Header: "Author", MaxWidth: 18, HideBelow: 60},
	{Key: "when", Header: "When", Width: 14, HideBelow: 40},
}

// View implements panel.Component.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w, h := styles.InnerSize(m.width, m.height)
	body, badge := m.body(w, h)
	return styles.Frame{
		Title:   "Commits",
		Badge:   badge,
		Width:   m.width,
		Height:  m.height,
		Focused: m.focused,
	}.Render(body)
}

// body picks the display state: unavailable, loading, error, empty, list.
func (m Model) body(w, h int) (string, string) {
	s, ok := slice.Get(m.deps.Store, slice.Commits)
	switch {
	case !ok:
		return unavailable.ForSlice("Commits").SetSize(w, h).View(), ""
	case s.Loading:
		return m.spinner.View() + " " + styles.MutedStyle.Render("Loading commits…"), ""
	case s.Failed():
		var b strings.Builder
		b.WriteString(styles.ErrorStyle.Render("Failed to load commits: " + s.Err))
		rows := Visible(s.Data, m.limit)
		if len(rows) > 0 {
			b.WriteString("\n")
			b.WriteString(styles.MutedStyle.Render("Showing commits from the last successful load"))
			b.WriteString("\n")
			b.WriteString(m.renderList(rows, w, h-2))
		}
		return b.String(), ""
	case len(s.Data) == 0:
		return styles.MutedStyle.Render("No commits yet"), "0"
	}

	rows := Visible(s.Data, m.limit)
	badge := fmt.Sprintf("%d", len(rows))
	if len(rows) < len(s.Data) {
		badge = fmt.Sprintf("%d of %d", len(rows), len(s.Data))
	}
	return m.renderList(rows, w, h), badge
}

func (m Model) renderList(rows []domain.CommitInfo, w, h int) string {
	if h < 1 {
		return ""
	}
	layout := table.NewLayout(columns, max(w-cursorWidth, 1))
	lines := []string{strings.Repeat(" ", cursorWidth) + layout.Header(styles.MutedStyle)}

	cursor := min(m.cursor, max(len(rows)-1, 0))
	visible := h - 1
	start := scrollStart(cursor, visible)
	end := min(len(rows), start+visible)
	now := m.deps.Clock()

	for i := start; i < end; i++ {
		c := rows[i]
		marker := strings.Repeat(" ", cursorWidth)
		subject := table.Text(c.Subject())
		if i == cursor {
			marker = styles.InfoStyle.Render("▸ ")
			subject = table.Styled(c.Subject(), styles.SelectedRowStyle)
		}
		row := layout.Row(map[string]table.Cell{
			"hash":    table.Styled(c.ShortHash(), styles.HashStyle),
			"subject": subject,
			"author":  table.Styled(c.Author, styles.SecondaryStyle),
			"when":    table.Styled(styles.FormatRelativeTime(c.Date, now), styles.MutedStyle),
		})
		lines = append(lines, panel.Zones.Mark(m.rowZone(i), marker+row))
	}
	return strings.Join(lines, "\n")
}

// scrollStart keeps the cursor on the last visible row once it passes the
// bottom of the viewport.
func scrollStart(cursor, visible int) int {
	if visible <= 0 || cursor < visible {
		return 0
	}
	return cursor - visible + 1
}
