// Package gitconfig is the git configuration viewer. The summary mode groups
// settings into collapsible sections; the detailed mode lists every raw entry
// with the scope it came from.
package gitconfig

import (
	"context"
	"maps"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/log"
	"github.com/zjrosen/gitpanes/internal/panel"
	"github.com/zjrosen/gitpanes/internal/slice"
	"github.com/zjrosen/gitpanes/internal/tool"
	"github.com/zjrosen/gitpanes/internal/ui/styles"
)

// ID is the panel identifier.
const ID = tool.PanelGitConfig

// Listens is the event vocabulary the panel subscribes to.
var Listens = []event.Type{event.ConfigRefresh, event.ConfigSetView}

// Registration describes the panel to hosts.
func Registration() panel.Registration {
	return panel.Registration{
		ID:          ID,
		Name:        "Git Config",
		Version:     "1.0.0",
		Description: "Effective git configuration of the repository.",
		Slices:      []slice.Name{slice.NameGitConfig},
		Tools:       tool.ForPanel(ID),
	}
}

// Config holds the panel settings.
type Config struct {
	Mode event.ViewMode
}

// Model is the git config panel.
type Model struct {
	deps     panel.Deps
	ctx      context.Context
	inbox    *panel.Inbox
	mode     event.ViewMode
	expanded map[SectionID]bool
	cursor   int
	viewport viewport.Model
	spinner  spinner.Model
	zones    string
	width    int
	height   int
	focused  bool
}

// New creates the panel. An invalid mode falls back to summary.
func New(deps panel.Deps, cfg Config) Model {
	mode := cfg.Mode
	if !mode.Valid() {
		mode = event.ViewSummary
	}
	return Model{
		deps:     deps,
		ctx:      context.Background(),
		mode:     mode,
		expanded: defaultExpanded(),
		viewport: viewport.New(0, 0),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.InfoStyle)),
		zones:    panel.Zones.NewPrefix(),
	}
}

// Registration implements panel.Component.
func (m Model) Registration() panel.Registration { return Registration() }

// Mode returns the display mode.
func (m Model) Mode() event.ViewMode { return m.mode }

// Expanded reports whether a summary section is expanded.
func (m Model) Expanded(id SectionID) bool { return m.expanded[id] }

// Mount subscribes to the panel's events and refreshes the slice when needed.
func (m Model) Mount(ctx context.Context) (Model, tea.Cmd) {
	if ctx == nil {
		ctx = context.Background()
	}
	m.ctx = ctx
	m.inbox.Close()
	m.inbox = panel.NewInbox(m.deps.Bus, Listens...)
	log.Debug(log.CatUI, "panel mounted", "panel", ID)

	return m, tea.Batch(
		m.inbox.Next(),
		panel.InitialRefresh(ctx, m.deps.Store, slice.NameGitConfig),
		m.spinner.Tick,
	)
}

// Unmount releases the subscriptions and forgets which sections were
// expanded.
func (m Model) Unmount() Model {
	m.inbox.Close()
	m.inbox = nil
	m.expanded = defaultExpanded()
	m.cursor = 0
	m.viewport.GotoTop()
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

func (m Model) config() (domain.GitConfig, bool) {
	s, ok := slice.Get(m.deps.Store, slice.GitConfig)
	if !ok || !s.HasData {
		return domain.GitConfig{}, false
	}
	return s.Data, true
}

// Update implements panel.Component.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case panel.EventMsg:
		if !m.inbox.Accepts(msg) {
			return m, nil
		}
		var cmd tea.Cmd
		m, cmd = m.handleEvent(msg.Event)
		return m, tea.Batch(cmd, m.inbox.Next())

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
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleEvent(e event.Event) (Model, tea.Cmd) {
	switch e.Type {
	case event.ConfigRefresh:
		return m, panel.Refresh(m.ctx, m.deps.Store, slice.NameGitConfig)
	case event.ConfigSetView:
		p, ok := event.PayloadAs[event.ViewChange](e)
		if !ok || !p.Mode.Valid() {
			log.Debug(log.CatUI, "ignoring view mode", "panel", ID, "payload", e.Payload)
			return m, nil
		}
		m = m.setMode(p.Mode)
	}
	return m, nil
}

func (m Model) setMode(mode event.ViewMode) Model {
	if mode != m.mode {
		m.mode = mode
		m.viewport.GotoTop()
	}
	return m
}

func (m Model) toggle(id SectionID) Model {
	expanded := maps.Clone(m.expanded)
	expanded[id] = !expanded[id]
	m.expanded = expanded
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.View):
		if m.mode == event.ViewSummary {
			return m.setMode(event.ViewDetailed), nil
		}
		return m.setMode(event.ViewSummary), nil
	case key.Matches(msg, keys.Refresh):
		return m, panel.Refresh(m.ctx, m.deps.Store, slice.NameGitConfig)
	}

	cfg, ok := m.config()
	if !ok {
		return m, nil
	}
	content, headers := m.render(cfg, m.viewport.Width)
	m.viewport.SetContent(content)

	if m.mode == event.ViewDetailed {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, keys.Down):
		m.cursor = min(m.cursor+1, len(sectionOrder)-1)
	case key.Matches(msg, keys.Toggle):
		m = m.toggle(sectionOrder[m.cursor])
		content, headers = m.render(cfg, m.viewport.Width)
		m.viewport.SetContent(content)
	}
	m.follow(headers[m.cursor])
	return m, nil
}

// follow scrolls so that line is visible.
func (m *Model) follow(line int) {
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.mode == event.ViewSummary {
		for i, id := range sectionOrder {
			if panel.Clicked(msg, m.sectionZone(id)) {
				m.cursor = i
				return m.toggle(id), nil
			}
		}
	}
	if cfg, ok := m.config(); ok {
		content, _ := m.render(cfg, m.viewport.Width)
		m.viewport.SetContent(content)
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) sectionZone(id SectionID) string { return m.zones + "section-" + string(id) }
