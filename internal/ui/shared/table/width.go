package table

// minColumnWidth leaves room for one wide rune or a character plus "…".
const minColumnWidth = 2

// columnWidths splits total between cols, one cell of separator between
// neighbours. Fixed columns take their Width first; flex columns (Width 0)
// share the rest evenly, the remainder going to the leftmost, clamped to
// their MinWidth and MaxWidth.
func columnWidths(cols []ColumnConfig, total int) []int {
	widths := make([]int, len(cols))
	if len(cols) == 0 {
		return widths
	}

	left := total - (len(cols) - 1)
	var flex []int
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			left -= c.Width
			continue
		}
		flex = append(flex, i)
	}

	if len(flex) > 0 {
		share, extra := 0, 0
		if left > 0 {
			share, extra = left/len(flex), left%len(flex)
		}
		for n, i := range flex {
			w := share
			if n < extra {
				w++
			}
			w = max(w, cols[i].MinWidth)
			if cols[i].MaxWidth > 0 {
				w = min(w, cols[i].MaxWidth)
			}
			widths[i] = w
		}
	}

	for i := range widths {
		widths[i] = max(widths[i], minColumnWidth)
	}
	return widths
}

// visibleColumns drops columns whose HideBelow exceeds the table width.
func visibleColumns(cols []ColumnConfig, total int) []ColumnConfig {
	out := make([]ColumnConfig, 0, len(cols))
	for _, c := range cols {
		if c.HideBelow > 0 && total < c.HideBelow {
			continue
		}
		out = append(out, c)
	}
	return out
}
