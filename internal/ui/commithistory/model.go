// Package commithistory is the commit list panel. It shows the newest
// commits of the commits slice and emits commit:selected when one is opened.
package commithistory

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
const ID = tool.PanelCommitHistory

// Listens is the event vocabulary the panel subscribes to.
var Listens = []event.Type{event.CommitHistoryRefresh, event.CommitHistorySetLimit}

// Registration describes the panel to hosts.
func Registration() panel.Registration {
	return panel.Registration{
		ID:          ID,
		Name:        "Commit History",
		Version:     "1.0.0",
		Description: "Recent commits, newest first. Opening one shows it in Commit Detail.",
		Slices:      []slice.Name{slice.NameCommits},
		Tools:       tool.ForPanel(ID),
	}
}

// Config holds the panel settings.
type Config struct {
	Limit int
}

// Model is the commit history panel.
type Model struct {
	deps    panel.Deps
	ctx     context.Context
	inbox   *panel.Inbox
	limit   int
	cursor  int
	spinner spinner.Model
	zones   string
	width   int
	height  int
	focused bool
}

// New creates the panel. A non-positive limit falls back to DefaultLimit.
func New(deps panel.Deps, cfg Config) Model {
	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Model{
		deps:    deps,
		ctx:     context.Background(),
		limit:   limit,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.InfoStyle)),
		zones:   panel.Zones.NewPrefix(),
	}
}

// Registration implements panel.Component.
func (m Model) Registration() panel.Registration { return Registration() }

// Limit returns the current commit cap.
func (m Model) Limit() int { return m.limit }

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
		panel.InitialRefresh(ctx, m.deps.Store, slice.NameCommits),
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

// commits returns the rows currently displayed.
func (m Model) commits() []domain.CommitInfo {
	s, ok := slice.Get(m.deps.Store, slice.Commits)
	if !ok || !s.HasData {
		return nil
	}
	return Visible(s.Data, m.limit)
}

// Selected returns the highlighted commit.
func (m Model) Selected() (domain.CommitInfo, bool) {
	rows := m.commits()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return domain.CommitInfo{}, false
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
	case event.CommitHistoryRefresh:
		return m, panel.Refresh(m.ctx, m.deps.Store, slice.NameCommits)
	case event.CommitHistorySetLimit:
		p, ok := event.PayloadAs[event.LimitChange](e)
		if !ok || p.Limit <= 0 {
			log.Debug(log.CatUI, "ignoring commit limit", "panel", ID, "payload", e.Payload)
			return m, nil
		}
		m.limit = p.Limit
		m.cursor = min(m.cursor, max(p.Limit-1, 0))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	rows := m.commits()
	switch {
	case key.Matches(msg, keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, keys.Down):
		m.cursor = min(m.cursor+1, max(len(rows)-1, 0))
	case key.Matches(msg, keys.Top):
		m.cursor = 0
	case key.Matches(msg, keys.Bottom):
		m.cursor = max(len(rows)-1, 0)
	case key.Matches(msg, keys.Select):
		return m, m.selectRow(rows)
	case key.Matches(msg, keys.Refresh):
		return m, panel.Refresh(m.ctx, m.deps.Store, slice.NameCommits)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	rows := m.commits()
	for i := range rows {
		if panel.Clicked(msg, m.rowZone(i)) {
			m.cursor = i
			return m, m.selectRow(rows)
		}
	}
	return m, nil
}

func (m Model) rowZone(i int) string {
	return m.zones + "row-" + strconv.Itoa(i)
}

// selectRow emits commit:selected for the highlighted row.
func (m Model) selectRow(rows []domain.CommitInfo) tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(rows) || m.deps.Bus == nil {
		return nil
	}
	hash := rows[m.cursor].Hash
	m.deps.Bus.Emit(event.New(event.CommitSelected, ID, event.CommitSelection{Hash: hash}))
	return nil
}
