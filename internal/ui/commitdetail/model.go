// Package commitdetail shows one commit: header, stats, message and files.
//
// The panel never fetches anything. The host drives it with
// commit-detail:loading, commit-detail:loaded and commit-detail:error; only
// the close action takes it back to the empty state.
package commitdetail

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/log"
	"github.com/zjrosen/gitpanes/internal/panel"
	"github.com/zjrosen/gitpanes/internal/tool"
	"github.com/zjrosen/gitpanes/internal/ui/styles"
)

// ID is the panel identifier.
const ID = tool.PanelCommitDetail

// Listens is the event vocabulary the panel subscribes to.
var Listens = []event.Type{event.CommitDetailLoading, event.CommitDetailLoaded, event.CommitDetailError}

// Registration describes the panel to hosts.
func Registration() panel.Registration {
	return panel.Registration{
		ID:          ID,
		Name:        "Commit Detail",
		Version:     "1.0.0",
		Description: "Message, stats and changed files of the selected commit.",
		Tools:       tool.ForPanel(ID),
	}
}

// State is the detail panel state.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	}
	return "empty"
}

// Model is the commit detail panel.
type Model struct {
	deps     panel.Deps
	inbox    *panel.Inbox
	state    State
	hash     string
	commit   domain.CommitDetail
	err      string
	viewport viewport.Model
	spinner  spinner.Model
	width    int
	height   int
	focused  bool
}

// New creates the panel in the empty state.
func New(deps panel.Deps) Model {
	return Model{
		deps:     deps,
		viewport: viewport.New(0, 0),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.InfoStyle)),
	}
}

// Registration implements panel.Component.
func (m Model) Registration() panel.Registration { return Registration() }

// State returns the current state.
func (m Model) State() State { return m.state }

// Hash returns the hash of the commit being shown or loaded.
func (m Model) Hash() string { return m.hash }

// Commit returns the loaded commit.
func (m Model) Commit() (domain.CommitDetail, bool) {
	return m.commit, m.state == StateLoaded
}

// Mount subscribes to the detail events.
func (m Model) Mount(context.Context) (Model, tea.Cmd) {
	m.inbox.Close()
	m.inbox = panel.NewInbox(m.deps.Bus, Listens...)
	log.Debug(log.CatUI, "panel mounted", "panel", ID)
	return m, tea.Batch(m.inbox.Next(), m.spinner.Tick)
}

// Unmount releases the subscriptions.
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

	case spinner.TickMsg:
		if msg.ID != m.spinner.ID() || !m.Mounted() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

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
	switch e.Type {
	case event.CommitDetailLoading:
		p, ok := event.PayloadAs[event.CommitSelection](e)
		if !ok {
			return m.ignore(e)
		}
		m.state = StateLoading
		m.hash = p.Hash
		m.err = ""
	case event.CommitDetailLoaded:
		p, ok := event.PayloadAs[event.CommitLoaded](e)
		if !ok {
			return m.ignore(e)
		}
		m.state = StateLoaded
		m.commit = p.Commit
		m.hash = p.Commit.Hash
		m.err = ""
		m.viewport.GotoTop()
	case event.CommitDetailError:
		p, ok := event.PayloadAs[event.CommitFailure](e)
		if !ok {
			return m.ignore(e)
		}
		m.state = StateError
		if p.Hash != "" {
			m.hash = p.Hash
		}
		m.err = p.Error
	}
	m.viewport.SetContent(m.content(m.viewport.Width))
	return m
}

func (m Model) ignore(e event.Event) Model {
	log.Warn(log.CatUI, "unexpected payload", "panel", ID, "type", e.Type.String())
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
		if m.hash == "" {
			return m, nil
		}
		return m, panel.Copy(m.deps.Clipboard, m.hash, "commit hash")
	}
	if m.state != StateLoaded {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// close returns to the empty state and tells the host.
func (m Model) close() Model {
	m.state = StateEmpty
	m.hash = ""
	m.err = ""
	m.commit = domain.CommitDetail{}
	m.viewport.SetContent("")
	if m.deps.Bus != nil {
		m.deps.Bus.Emit(event.New(event.CommitDeselected, ID, event.Empty{}))
	}
	return m
}
