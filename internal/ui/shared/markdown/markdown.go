// Package markdown renders pull request bodies for the terminal.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/gitpanes/internal/log"
)

// Renderer turns markdown into terminal text no wider than width.
type Renderer interface {
	Render(markdown string, width int) string
}

// Plain word-wraps the source without interpreting it.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(markdown string, width int) string {
	text := strings.TrimSpace(strings.ReplaceAll(markdown, "\r\n", "\n"))
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// Glamour styles markdown with glamour. Renderers are cached per width.
type Glamour struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewGlamour creates a renderer using a glamour standard style ("dark",
// "light", "notty", ...) or terminal detection for "auto" and "".
func NewGlamour(style string) *Glamour {
	return &Glamour{style: style, renderers: make(map[int]*glamour.TermRenderer)}
}

// Render implements Renderer. Rendering failures fall back to Plain.
func (g *Glamour) Render(markdown string, width int) string {
	r, err := g.renderer(width)
	if err == nil {
		var out string
		out, err = r.Render(markdown)
		if err == nil {
			return strings.Trim(out, "\n")
		}
	}
	log.Warn(log.CatUI, "markdown render failed, using plain text", "error", err.Error())
	return Plain{}.Render(markdown, width)
}

func (g *Glamour) renderer(width int) (*glamour.TermRenderer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if r, ok := g.renderers[width]; ok {
		return r, nil
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(width, 0))}
	if g.style == "" || g.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(g.style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	g.renderers[width] = r
	return r, nil
}
