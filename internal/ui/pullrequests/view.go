package pullrequests

import (
	"fmt"
	"strings"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/panel"
	"github.com/zjrosen/gitpanes/internal/slice"
	"github.com/zjrosen/gitpanes/internal/ui/shared/table"
	"github.com/zjrosen/gitpanes/internal/ui/styles"
	"github.com/zjrosen/gitpanes/internal/ui/unavailable"
)

const cursorWidth = 2

var columns = []table.ColumnConfig{
	{Key: "number", Header: "#", Width: 6, Align: table.AlignRight},
	{Key: "title", Header: "Title", MinWidth: 12},
	{Key: "status", Header: "Status", Width: 6},
	{Key: "author", Header: "Author", MaxWidth: 16, HideBelow: 64},
	{Key: "updated", Header: "Updated", Width: 14, HideBelow: 48},
	{Key: "comments", Header: "", Width: 5, HideBelow: 56},
}

// View implements panel.Component.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w, h := styles.InnerSize(m.width, m.height)
	return styles.Frame{
		Title:   "Pull Requests",
		Badge:   filterLabel(m.filter),
		Width:   m.width,
		Height:  m.height,
		Focused: m.focused,
	}.Render(m.body(w, h))
}

// body picks the display state: unavailable, loading, error, empty, list.
func (m Model) body(w, h int) string {
	s, ok := slice.Get(m.deps.Store, slice.PullRequests)
	switch {
	case !ok:
		return unavailable.ForSlice("Pull requests").SetSize(w, h).View()
	case s.Loading:
		return m.spinner.View() + " " + styles.MutedStyle.Render("Loading pull requests…")
	case s.Failed() && !s.HasData:
		return styles.ErrorStyle.Render("Failed to load pull requests: " + s.Err)
	}

	lines := []string{m.renderTabs(Count(s.Data))}
	if s.Failed() {
		lines = append(lines, styles.ErrorStyle.Render("Failed to load pull requests: "+s.Err))
	}
	rows := Visible(s.Data, m.filter)
	if len(rows) == 0 {
		lines = append(lines, "", styles.MutedStyle.Render(emptyText(m.filter)))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, m.renderList(rows, w, h-len(lines)))
	return strings.Join(lines, "\n")
}

func emptyText(f event.PRFilter) string {
	switch f {
	case event.FilterOpen:
		return "No open pull requests"
	case event.FilterClosed:
		return "No closed pull requests"
	}
	return "No pull requests"
}

func (m Model) renderTabs(c Counts) string {
	tabs := make([]string, 0, len(filterOrder))
	for _, f := range filterOrder {
		label := fmt.Sprintf("%s %d", filterLabel(f), c.For(f))
		style := styles.BadgeStyle
		if f == m.filter {
			style = styles.ActiveBadgeStyle
		}
		tabs = append(tabs, panel.Zones.Mark(m.tabZone(f), style.Render(label)))
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderList(rows []domain.PullRequest, w, h int) string {
	if h < 1 {
		return ""
	}
	layout := table.NewLayout(columns, max(w-cursorWidth, 1))
	lines := []string{strings.Repeat(" ", cursorWidth) + layout.Header(styles.MutedStyle)}

	cursor := min(m.cursor, max(len(rows)-1, 0))
	visible := h - 1
	start := 0
	if visible > 0 && cursor >= visible {
		start = cursor - visible + 1
	}
	end := min(len(rows), start+visible)
	now := m.deps.Clock()

	for i := start; i < end; i++ {
		pr := rows[i]
		status := pr.Status()
		marker := strings.Repeat(" ", cursorWidth)
		title := table.Text(pr.Title)
		if i == cursor {
			marker = styles.InfoStyle.Render("▸ ")
			title = table.Styled(pr.Title, styles.SelectedRowStyle)
		}
		row := layout.Row(map[string]table.Cell{
			"number":   table.Styled(fmt.Sprintf("#%d", pr.Number), styles.MutedStyle),
			"title":    title,
			"status":   table.Styled(status.Label(), styles.PRStatusStyle(status)),
			"author":   table.Styled(pr.Author(), styles.SecondaryStyle),
			"updated":  table.Styled(styles.FormatRelativeTime(pr.UpdatedAt, now), styles.MutedStyle),
			"comments": table.Text(styles.FormatCommentIndicator(pr.CommentCount())),
		})
		lines = append(lines, panel.Zones.Mark(m.rowZone(i), marker+row))
	}
	return strings.Join(lines, "\n")
}
