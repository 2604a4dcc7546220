package commitdetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/ui/styles"
)

// View implements panel.Component.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var badge, body string
	switch m.state {
	case StateEmpty:
		body = styles.MutedStyle.Render("Select a commit to see its details")
	case StateLoading:
		badge = shortHash(m.hash)
		body = m.spinner.View() + " " + styles.MutedStyle.Render("Loading commit "+shortHash(m.hash)+"…")
	case StateError:
		badge = shortHash(m.hash)
		w, _ := styles.InnerSize(m.width, m.height)
		msg := "Failed to load commit"
		if m.hash != "" {
			msg += " " + shortHash(m.hash)
		}
		body = styles.ErrorStyle.Render(wordwrap.String(msg+": "+m.err, w))
	case StateLoaded:
		badge = m.commit.ShortHash()
		body = m.viewport.View()
	}
	return styles.Frame{
		Title:   "Commit Detail",
		Badge:   badge,
		Width:   m.width,
		Height:  m.height,
		Focused: m.focused,
	}.Render(body)
}

// content renders the loaded commit for the viewport.
func (m Model) content(width int) string {
	if m.state != StateLoaded || width <= 0 {
		return ""
	}
	c := m.commit
	now := m.deps.Clock()

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(wordwrap.String(c.Subject(), width)))
	b.WriteString("\n\n")

	author := c.Author
	if c.AuthorEmail != "" {
		author += " <" + c.AuthorEmail + ">"
	}
	field(&b, "Commit", styles.HashStyle.Render(c.ShortHash()))
	field(&b, "Author", author)
	field(&b, "Date", styles.FormatTimestamp(c.Date)+styles.MutedStyle.Render(" ("+styles.FormatRelativeTime(c.Date, now)+")"))
	field(&b, "Stats", formatStats(c.Stats))

	if body := c.Body(); body != "" {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(body, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Files (%d)", len(c.Files))))
	for _, f := range c.Files {
		b.WriteString("\n")
		b.WriteString(formatFile(f))
	}
	return b.String()
}

func field(b *strings.Builder, label, value string) {
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%-7s", label)))
	b.WriteString(value)
	b.WriteString("\n")
}

// formatStats renders "+A −D (T)".
func formatStats(s domain.CommitStats) string {
	return styles.FileAddedStyle.Render(fmt.Sprintf("+%d", s.Additions)) + " " +
		styles.FileRemovedStyle.Render(fmt.Sprintf("−%d", s.Deletions)) + " " +
		styles.MutedStyle.Render(fmt.Sprintf("(%d)", s.Total))
}

func fileGlyph(s domain.FileStatus) (string, lipgloss.Style) {
	switch s {
	case domain.FileAdded:
		return "A", styles.FileAddedStyle
	case domain.FileRemoved:
		return "D", styles.FileRemovedStyle
	case domain.FileRenamed:
		return "R", styles.FileRenamedStyle
	}
	return "M", styles.FileModifiedStyle
}

func formatFile(f domain.FileChange) string {
	glyph, style := fileGlyph(f.Status)
	name := f.Filename
	if f.Status == domain.FileRenamed && f.PreviousFilename != "" {
		name = f.PreviousFilename + " → " + f.Filename
	}
	counts := styles.FileAddedStyle.Render(fmt.Sprintf("+%d", f.Additions)) + " " +
		styles.FileRemovedStyle.Render(fmt.Sprintf("−%d", f.Deletions))
	return "  " + style.Render(glyph) + " " + name + "  " + counts
}

func shortHash(h string) string {
	return domain.CommitInfo{Hash: h}.ShortHash()
}
