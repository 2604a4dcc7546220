// Package prdetail shows the pull request carried by pull-request:selected.
package prdetail

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/log"
	"github.com/zjrosen/gitpanes/internal/panel"
	"github.com/zjrosen/gitpanes/internal/tool"
	"github.com/zjrosen/gitpanes/internal/ui/shared/markdown"
	"github.com/zjrosen/gitpanes/internal/ui/styles"
)

// ID is the panel identifier.
const ID = tool.PanelPRDetail

// Listens is the event vocabulary the panel subscribes to.
var Listens = []event.Type{event.PullRequestSelected}

// Registration describes the panel to hosts.
func Registration() panel.Registration {
	return panel.Registration{
		ID:          ID,
		Name:        "Pull Request Detail",
		Version:     "1.0.0",
		Description: "Description, branches and activity of the selected pull request.",
		Tools:       tool.ForPanel(ID),
	}
}

// State is the detail panel state.
type State int

const (
	StateEmpty State = iota
	StateLoaded
	// StateError is entered when the selected pull request is inconsistent,
	// for example open with a merge timestamp.
	StateError
)

// Config holds the panel settings.
type Config struct {
	// Markdown renders the description. Defaults to markdown.Plain.
	Markdown markdown.Renderer
}

// Model is the pull request detail panel.
type Model struct {
	deps     panel.Deps
	md       markdown.Renderer
	inbox    *panel.Inbox
	state    State
	pr       domain.PullRequest
	err      string
	viewport viewport.Model
	width    int
	height   int
	focused  bool
}

// New creates the panel in the empty state.
func New(deps panel.Deps, cfg Config) Model {
	md := cfg.Markdown
	if md == nil {
		md = markdown.Plain{}
	}
	return Model{deps: deps, md: md, viewport: viewport.New(0, 0)}
}

// Registration implements panel.Component.
func (m Model) Registration() panel.Registration { return Registration() }

// State returns the current state.
func (m Model) State() State { return m.state }

// PullRequest returns the pull request on display.
func (m Model) PullRequest() (domain.PullRequest, bool) {
	return m.pr, m.state != StateEmpty
}

// Mount subscribes to pull-request:selected.
func (m Model) Mount(context.Context) (Model, tea.Cmd) {
	m.inbox.Close()
	m.inbox = panel.NewInbox(m.deps.Bus, Listens...)
	log.Debug(log.CatUI, "panel mounted", "panel", ID)
	return m, m.inbox.Next()
}

// Unmount releases the subscription.
func (m Model) Unmount() Model {
	m.inbox.Close()
	m.inbox = nil
	log.Debug(log.CatUI, "panel unmounted", "panel", ID)
	return m
}

// Mounted reports whether the panel is currently subscribed.
func (m Model) Mounted() bool { return m.inbox != nil && !m.inbox.Closed() }

// SetSize implements panel.Component.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	w, h := styles.InnerSize(width, height)
	m.viewport.Width = w
	m.viewport.Height = h
	m.viewport.SetContent(m.content(w))
	return m
}

// Focus implements panel.Component.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur implements panel.Component.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// Update implements panel.Component.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case panel.EventMsg:
		if !m.inbox.Accepts(msg) {
			return m, nil
		}
		m = m.handleEvent(msg.Event)
		return m, m.inbox.Next()

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.state != StateLoaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleEvent(e event.Event) Model {
	if e.Type != event.PullRequestSelected {
		return m
	}
	p, ok := event.PayloadAs[event.PullRequestSelection](e)
	if !ok {
		log.Warn(log.CatUI, "unexpected payload", "panel", ID, "type", e.Type.String())
		return m
	}
	m.pr = p.PR
	m.state = StateLoaded
	m.err = ""
	if err := p.PR.Validate(); err != nil {
		m.state = StateError
		m.err = err.Error()
	}
	m.viewport.SetContent(m.content(m.viewport.Width))
	m.viewport.GotoTop()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Close):
		if m.state == StateEmpty {
			return m, nil
		}
		return m.close(), nil
	case key.Matches(msg, keys.Copy):
		if m.state == StateEmpty {
			return m, nil
		}
		return m, panel.Copy(m.deps.Clipboard, m.pr.HTMLURL, "pull request URL")
	}
	if m.state != StateLoaded {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) close() Model {
	m.state = StateEmpty
	m.pr = domain.PullRequest{}
	m.err = ""
	m.viewport.SetContent("")
	if m.deps.Bus != nil {
		m.deps.Bus.Emit(event.New(event.PullRequestDeselected, ID, event.Empty{}))
	}
	return m
}
