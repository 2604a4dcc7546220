package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	cornerTopLeft     = "╭"
	cornerTopRight    = "╮"
	cornerBottomLeft  = "╰"
	cornerBottomRight = "╯"
	edgeHorizontal    = "─"
	edgeVertical      = "│"

	ellipsis = "…"
)

// Frame draws a rounded panel border with a title on the left of the top
// edge and an optional badge on the right.
type Frame struct {
	Title   string
	Badge   string
	Width   int
	Height  int
	Focused bool
}

// Render places content inside the frame. Content is clipped to the inner
// area and padded so the right edge lines up.
func (f Frame) Render(content string) string {
	edgeColor := BorderDefaultColor
	if f.Focused {
		edgeColor = BorderFocusColor
	}
	edge := lipgloss.NewStyle().Foreground(edgeColor)
	title := TitleStyle
	if !f.Focused {
		title = SecondaryStyle
	}

	inner := max(f.Width-2, 1)
	rows := max(f.Height-2, 1)

	lines := strings.Split(content, "\n")
	var b strings.Builder
	b.WriteString(topEdge(f.Title, f.Badge, inner, edge, title))
	b.WriteByte('\n')
	for i := range rows {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], inner, "")
		}
		if pad := inner - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteString(edge.Render(edgeVertical))
		b.WriteString(line)
		b.WriteString(edge.Render(edgeVertical))
		b.WriteByte('\n')
	}
	b.WriteString(edge.Render(cornerBottomLeft + strings.Repeat(edgeHorizontal, inner) + cornerBottomRight))
	return b.String()
}

// InnerSize returns the content area of a frame of the given outer size.
func InnerSize(width, height int) (int, int) {
	return max(width-2, 1), max(height-2, 1)
}

// topEdge renders ╭─ Title ───── Badge ─╮. The badge is dropped before the
// title is shortened.
func topEdge(title, badge string, inner int, edge, titleStyle lipgloss.Style) string {
	plain := func() string {
		return edge.Render(cornerTopLeft + strings.Repeat(edgeHorizontal, inner) + cornerTopRight)
	}
	if title == "" && badge == "" {
		return plain()
	}

	// "─ " + title + " " before the fill, " " + badge + " ─" after it.
	badgeWidth := 0
	if badge != "" {
		badgeWidth = ansi.StringWidth(badge) + 3
	}
	titleRoom := inner - 4 - badgeWidth
	if badge != "" && (titleRoom < 1 || ansi.StringWidth(title) > titleRoom) {
		badge, badgeWidth = "", 0
		titleRoom = inner - 4
	}
	if titleRoom < 1 {
		return plain()
	}

	var b strings.Builder
	b.WriteString(edge.Render(cornerTopLeft))
	used := 0
	if title != "" {
		t := Truncate(title, titleRoom)
		b.WriteString(edge.Render(edgeHorizontal + " "))
		b.WriteString(titleStyle.Render(t))
		b.WriteString(edge.Render(" "))
		used = ansi.StringWidth(t) + 3
	}
	fill := max(inner-used-badgeWidth, 1)
	b.WriteString(edge.Render(strings.Repeat(edgeHorizontal, fill)))
	if badge != "" {
		b.WriteString(edge.Render(" "))
		b.WriteString(MutedStyle.Render(badge))
		b.WriteString(edge.Render(" " + edgeHorizontal))
	}
	b.WriteString(edge.Render(cornerTopRight))
	return b.String()
}

// Truncate shortens s to at most width cells, ending in an ellipsis when
// anything was cut. Styled input keeps its escape sequences.
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}
