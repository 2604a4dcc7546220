// Package table lays out fixed-width list rows for the panels.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Align is the horizontal alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// ColumnConfig describes one column.
type ColumnConfig struct {
	Key       string
	Header    string
	Width     int // fixed width; 0 means flex
	MinWidth  int
	MaxWidth  int
	HideBelow int // hide the column when the table is narrower than this
	Align     Align
}

// Cell is one rendered value. Text is measured and cut before Style is
// applied, so styles never affect the layout.
type Cell struct {
	Text  string
	Style *lipgloss.Style
}

// Text returns an unstyled cell.
func Text(s string) Cell { return Cell{Text: s} }

// Styled returns a cell rendered with style.
func Styled(s string, style lipgloss.Style) Cell { return Cell{Text: s, Style: &style} }

// Layout is a set of visible columns with resolved widths.
type Layout struct {
	Columns []ColumnConfig
	Widths  []int
}

// NewLayout resolves cols for a table total cells wide.
func NewLayout(cols []ColumnConfig, total int) Layout {
	visible := visibleColumns(cols, total)
	return Layout{Columns: visible, Widths: columnWidths(visible, total)}
}

// Visible reports whether the column with key survived the width cut.
func (l Layout) Visible(key string) bool {
	for _, c := range l.Columns {
		if c.Key == key {
			return true
		}
	}
	return false
}

// Header renders the column headers.
func (l Layout) Header(style lipgloss.Style) string {
	cells := make(map[string]Cell, len(l.Columns))
	for _, c := range l.Columns {
		cells[c.Key] = Styled(c.Header, style)
	}
	return l.Row(cells)
}

// Row renders the cells keyed by column key. Missing keys render blank.
func (l Layout) Row(cells map[string]Cell) string {
	parts := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		cell := cells[c.Key]
		text := fit(cell.Text, l.Widths[i], c.Align)
		if cell.Style != nil {
			text = cell.Style.Render(text)
		}
		parts[i] = text
	}
	return strings.Join(parts, " ")
}

// fit cuts or pads s to exactly width cells.
func fit(s string, width int, align Align) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	if align == AlignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}
