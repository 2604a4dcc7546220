package prdetail

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

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
		body = styles.MutedStyle.Render("Select a pull request to see its details")
	case StateError:
		badge = fmt.Sprintf("#%d", m.pr.Number)
		w, _ := styles.InnerSize(m.width, m.height)
		body = styles.ErrorStyle.Render(wordwrap.String("Cannot show pull request: "+m.err, w))
	case StateLoaded:
		badge = fmt.Sprintf("#%d", m.pr.Number)
		body = m.viewport.View()
	}
	return styles.Frame{
		Title:   "Pull Request",
		Badge:   badge,
		Width:   m.width,
		Height:  m.height,
		Focused: m.focused,
	}.Render(body)
}

// content renders the loaded pull request for the viewport.
func (m Model) content(width int) string {
	if m.state != StateLoaded || width <= 0 {
		return ""
	}
	pr := m.pr
	now := m.deps.Clock()
	status := pr.Status()

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(wordwrap.String(fmt.Sprintf("#%d %s", pr.Number, pr.Title), width)))
	b.WriteString("\n")
	b.WriteString(styles.PRStatusStyle(status).Render(status.Label()))
	if author := pr.Author(); author != "" {
		b.WriteString(styles.MutedStyle.Render(" by "))
		b.WriteString(styles.SecondaryStyle.Render(author))
	}
	b.WriteString("\n\n")

	if head, base := pr.HeadRef(), pr.BaseRef(); head != "" || base != "" {
		field(&b, "Branch", orUnknown(head)+" → "+orUnknown(base))
	}
	created := pr.CreatedAt
	updated := pr.UpdatedAt
	field(&b, "Created", styles.FormatDate(&created, now))
	field(&b, "Updated", styles.FormatDate(&updated, now))
	switch {
	case pr.IsMerged():
		field(&b, "Merged", styles.FormatDate(pr.MergedAt, now))
	case pr.ClosedAt != nil:
		field(&b, "Closed", styles.FormatDate(pr.ClosedAt, now))
	}
	comments := styles.FormatCommentIndicator(pr.CommentCount())
	if comments == "" {
		comments = styles.MutedStyle.Render("none")
	}
	field(&b, "Comments", comments)

	b.WriteString("\n")
	if strings.TrimSpace(pr.Body) == "" {
		b.WriteString(styles.MutedStyle.Italic(true).Render("No description provided."))
	} else {
		b.WriteString(strings.TrimRight(m.md.Render(pr.Body, width), "\n"))
	}
	if pr.HTMLURL != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.MutedStyle.Render(pr.HTMLURL))
	}
	return b.String()
}

func field(b *strings.Builder, label, value string) {
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%-9s", label)))
	b.WriteString(value)
	b.WriteString("\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
