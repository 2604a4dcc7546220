// Package pullrequests is the pull request list panel with its
// open/closed/all filter tabs.
package pullrequests

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
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
const ID = tool.PanelPullRequests

// Listens is the event vocabulary the panel subscribes to.
var Listens = []event.Type{event.PullRequestsRefresh, event.PullRequestsSetFilter}

// Registration describes the panel to hosts.
func Registration() panel.Registration {
	return panel.Registration{
		ID:          ID,
		Name:        "Pull Requests",
		Version:     "1.0.0",
		Description: "Pull requests of the repository, filterable by state.",
		Slices:      []slice.Name{slice.NamePullRequests},
		Tools:       tool.ForPanel(ID),
	}
}

// Config holds the panel settings.
type Config struct {
	Filter event.PRFilter
}

// Model is the pull request list panel.
type Model struct {
	deps    panel.Deps
	ctx     context.Context
	inbox   *panel.Inbox
	filter  event.PRFilter
	cursor  int
	spinner spinner.Model
	zones   string
	width   int
	height  int
	focused bool
}

// New creates the panel. An invalid filter falls back to DefaultFilter.
func New(deps panel.Deps, cfg Config) Model {
	f := cfg.Filter
	if !f.Valid() {
		f = DefaultFilter
	}
	return Model{
		deps:    deps,
		ctx:     context.Background(),
		filter:  f,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.InfoStyle)),
		zones:   panel.Zones.NewPrefix(),
	}
}

// Registration implements panel.Component.
func (m Model) Registration() panel.Registration { return Registration() }

// Filter returns the active filter.
func (m Model) Filter() event.PRFilter { return m.filter }

// Cursor returns the index of the highlighted row.
func (m Model) Cursor() int { return m.cursor }

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
		panel.InitialRefresh(ctx, m.deps.Store, slice.NamePullRequests),
		m.spinner.Tick,
	)
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

func (m Model) all() []domain.PullRequest {
	s, ok := slice.Get(m.deps.Store, slice.PullRequests)
	if !ok || !s.HasData {
		return nil
	}
	return s.Data
}

// Selected returns the highlighted pull request under the current filter.
func (m Model) Selected() (domain.PullRequest, bool) {
	rows := Visible(m.all(), m.filter)
	if m.cursor < 0 || m.cursor >= len(rows) {
		return domain.PullRequest{}, false
	}
	return rows[m.cursor], true
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
	case event.PullRequestsRefresh:
		return m, panel.Refresh(m.ctx, m.deps.Store, slice.NamePullRequests)
	case event.PullRequestsSetFilter:
		p, ok := event.PayloadAs[event.FilterChange](e)
		if !ok || !p.Filter.Valid() {
			log.Debug(log.CatUI, "ignoring filter", "panel", ID, "payload", e.Payload)
			return m, nil
		}
		m = m.setFilter(p.Filter)
	}
	return m, nil
}

func (m Model) setFilter(f event.PRFilter) Model {
	if f != m.filter {
		m.filter = f
		m.cursor = 0
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	rows := Visible(m.all(), m.filter)
	switch {
	case key.Matches(msg, keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, keys.Down):
		m.cursor = min(m.cursor+1, max(len(rows)-1, 0))
	case key.Matches(msg, keys.Top):
		m.cursor = 0
	case key.Matches(msg, keys.Bottom):
		m.cursor = max(len(rows)-1, 0)
	case key.Matches(msg, keys.Filter):
		m = m.setFilter(nextFilter(m.filter))
	case key.Matches(msg, keys.Select):
		m.selectRow(rows)
	case key.Matches(msg, keys.Refresh):
		return m, panel.Refresh(m.ctx, m.deps.Store, slice.NamePullRequests)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	for _, f := range filterOrder {
		if panel.Clicked(msg, m.tabZone(f)) {
			return m.setFilter(f), nil
		}
	}
	rows := Visible(m.all(), m.filter)
	for i := range rows {
		if panel.Clicked(msg, m.rowZone(i)) {
			m.cursor = i
			m.selectRow(rows)
			return m, nil
		}
	}
	return m, nil
}

func (m Model) tabZone(f event.PRFilter) string { return m.zones + "tab-" + string(f) }
func (m Model) rowZone(i int) string            { return m.zones + "row-" + strconv.Itoa(i) }

// selectRow emits pull-request:selected carrying the full pull request.
func (m Model) selectRow(rows []domain.PullRequest) {
	if m.cursor < 0 || m.cursor >= len(rows) || m.deps.Bus == nil {
		return
	}
	m.deps.Bus.Emit(event.New(event.PullRequestSelected, ID, event.PullRequestSelection{PR: rows[m.cursor]}))
}
