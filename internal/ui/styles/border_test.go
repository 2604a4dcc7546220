package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestFrame_Basic(t *testing.T) {
	out := Frame{Title: "Commits", Width: 20, Height: 5}.Render("content")
	lines := plainLines(out)

	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "╭─ Commits "))
	require.True(t, strings.HasSuffix(lines[0], "╮"))
	require.Equal(t, "│content           │", lines[1])
	require.True(t, strings.HasPrefix(lines[4], "╰"))
	require.True(t, strings.HasSuffix(lines[4], "╯"))
}

func TestFrame_Badge(t *testing.T) {
	out := Frame{Title: "PRs", Badge: "3 open", Width: 30, Height: 3}.Render("")
	top := plainLines(out)[0]

	require.Contains(t, top, "PRs")
	require.True(t, strings.HasSuffix(top, " 3 open ─╮"), top)
	require.Equal(t, 30, ansi.StringWidth(top))
}

func TestFrame_NarrowDropsBadgeFirst(t *testing.T) {
	out := Frame{Title: "Pull Requests", Badge: "12 open", Width: 20, Height: 3}.Render("")
	top := plainLines(out)[0]

	require.NotContains(t, top, "12 open")
	require.Contains(t, top, "Pull Requests")
	require.Equal(t, 20, ansi.StringWidth(top))
}

func TestFrame_LongTitleTruncated(t *testing.T) {
	out := Frame{Title: "This Is A Very Long Title That Should Be Truncated", Width: 20, Height: 3}.Render("")
	top := plainLines(out)[0]

	require.Equal(t, 20, ansi.StringWidth(top))
	require.Contains(t, top, "…")
}

func TestFrame_ClipsContent(t *testing.T) {
	content := "line one is much too long for the frame\n2\n3\n4\n5"
	out := Frame{Width: 12, Height: 4}.Render(content)
	lines := plainLines(out)

	require.Len(t, lines, 4)
	require.Equal(t, "│line one i│", lines[1])
	require.Equal(t, "│2         │", lines[2])
}

func TestFrame_FocusKeepsLayout(t *testing.T) {
	blurred := Frame{Title: "T", Width: 16, Height: 4}.Render("x")
	focused := Frame{Title: "T", Width: 16, Height: 4, Focused: true}.Render("x")
	require.Equal(t, ansi.Strip(blurred), ansi.Strip(focused))
}

func TestFrame_WidthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(3, 80).Draw(t, "width")
		h := rapid.IntRange(3, 20).Draw(t, "height")
		title := rapid.StringMatching(`[A-Za-z ]{0,40}`).Draw(t, "title")
		badge := rapid.StringMatching(`[0-9a-z ]{0,12}`).Draw(t, "badge")

		out := Frame{Title: title, Badge: badge, Width: w, Height: h}.Render("body")
		lines := plainLines(out)
		if len(lines) != h {
			t.Fatalf("got %d lines, want %d", len(lines), h)
		}
		for i, l := range lines {
			if got := ansi.StringWidth(l); got != w {
				t.Fatalf("line %d width %d, want %d: %q", i, got, w, l)
			}
		}
	})
}

func TestInnerSize(t *testing.T) {
	w, h := InnerSize(20, 10)
	require.Equal(t, 18, w)
	require.Equal(t, 8, h)

	w, h = InnerSize(1, 1)
	require.Equal(t, 1, w)
	require.Equal(t, 1, h)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 6, "hello…"},
		{"zero", "hello", 0, ""},
		{"wide runes", "日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Truncate(tt.in, tt.width))
		})
	}
}
