// Package dashboard is the reference host for the git panels. It mounts them
// in tabs, routes input, and owns the reactions the panels rely on: loading
// commit details when a commit is selected and moving focus when a detail
// panel closes.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/gitpanes/internal/config"
	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/git/application"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/log"
	"github.com/zjrosen/gitpanes/internal/mode/shared"
	"github.com/zjrosen/gitpanes/internal/panel"
	"github.com/zjrosen/gitpanes/internal/pubsub"
	"github.com/zjrosen/gitpanes/internal/slice"
	"github.com/zjrosen/gitpanes/internal/tool"
	"github.com/zjrosen/gitpanes/internal/tracing"
	"github.com/zjrosen/gitpanes/internal/ui/commitdetail"
	"github.com/zjrosen/gitpanes/internal/ui/commithistory"
	"github.com/zjrosen/gitpanes/internal/ui/gitconfig"
	"github.com/zjrosen/gitpanes/internal/ui/prdetail"
	"github.com/zjrosen/gitpanes/internal/ui/pullrequests"
)

// Source is the event source the dashboard emits with.
const Source = "dashboard"

// hostListens are the panel emissions the dashboard reacts to.
var hostListens = []event.Type{
	event.CommitSelected,
	event.CommitDeselected,
	event.PullRequestSelected,
	event.PullRequestDeselected,
}

// Panels returns the registry of every built-in panel.
func Panels() *panel.Registry {
	return panel.NewRegistry(
		commithistory.Registration(),
		commitdetail.Registration(),
		pullrequests.Registration(),
		prdetail.Registration(),
		gitconfig.Registration(),
	)
}

// Deps are the services the dashboard runs on.
type Deps struct {
	Bus       *event.Bus
	Store     *slice.MemoryStore
	Loader    application.Loader
	Clipboard panel.Clipboard
	// Registry narrows the mounted panels. Nil mounts all of them.
	Registry *panel.Registry
	Now      func() time.Time
}

// Config holds the dashboard settings.
type Config struct {
	Commits       commithistory.Config
	PullRequests  pullrequests.Config
	GitConfig     gitconfig.Config
	PRDetail      prdetail.Config
	Actions       map[string]config.ActionConfig
	ShowStatusBar bool
	WorkDir       string
}

type tab struct {
	title string
	panes []string // list panel first
}

var layout = []tab{
	{title: "Commits", panes: []string{commithistory.ID, commitdetail.ID}},
	{title: "Pull Requests", panes: []string{pullrequests.ID, prdetail.ID}},
	{title: "Config", panes: []string{gitconfig.ID}},
}

func isDetail(id string) bool {
	return id == commitdetail.ID || id == prdetail.ID
}

// detailMsg carries a fetched commit detail back into Update.
type detailMsg struct {
	hash   string
	detail domain.CommitDetail
	err    error
}

// reloadedMsg is returned once every slice has been refreshed.
type reloadedMsg struct{}

// Model is the dashboard.
type Model struct {
	deps     Deps
	cfg      Config
	ctx      context.Context
	cancel   context.CancelFunc
	panels   map[string]panel.Panel
	tabs     []tab
	active   int
	focus    int
	inbox    *panel.Inbox
	changes  *pubsub.ContinuousListener[slice.Change]
	events   *eventLog
	invoker  *tool.Invoker
	palette  palette
	help     help.Model
	showHelp bool
	status   status
	pending  string // hash of the commit detail being fetched
	startup  []tea.Cmd
	width    int
	height   int
}

// New mounts the enabled panels and subscribes the host reactions. Call
// Close once the program has exited.
func New(deps Deps, cfg Config) Model {
	ctx, cancel := context.WithCancel(context.Background())
	reg := deps.Registry
	if reg == nil {
		reg = Panels()
	}

	m := Model{
		deps:    deps,
		cfg:     cfg,
		ctx:     ctx,
		cancel:  cancel,
		panels:  make(map[string]panel.Panel),
		palette: newPalette(),
		help:    help.New(),
	}

	pdeps := panel.Deps{Bus: deps.Bus, Store: deps.Store, Clipboard: deps.Clipboard, Now: deps.Now}
	for _, r := range reg.All() {
		p := build(r.ID, pdeps, cfg)
		if p == nil {
			log.Warn(log.CatHost, "no panel for registration", "id", r.ID)
			continue
		}
		var cmd tea.Cmd
		p, cmd = p.Mount(ctx)
		m.panels[r.ID] = p
		m.startup = append(m.startup, cmd)
	}
	panel.OnPackageLoad(reg.All()...)

	for _, t := range layout {
		var panes []string
		for _, id := range t.panes {
			if _, ok := m.panels[id]; ok {
				panes = append(panes, id)
			}
		}
		if len(panes) > 0 {
			m.tabs = append(m.tabs, tab{title: t.title, panes: panes})
		}
	}

	m.inbox = panel.NewInbox(deps.Bus, hostListens...)
	m.events = watchEvents(deps.Bus)
	m.changes = pubsub.NewContinuousListener(ctx, deps.Store.Changes())
	m.invoker = tool.NewInvoker(deps.Bus, deps.Store)
	return m.applyFocus()
}

func build(id string, deps panel.Deps, cfg Config) panel.Panel {
	switch id {
	case commithistory.ID:
		return panel.Wrap(commithistory.New(deps, cfg.Commits))
	case commitdetail.ID:
		return panel.Wrap(commitdetail.New(deps))
	case pullrequests.ID:
		return panel.Wrap(pullrequests.New(deps, cfg.PullRequests))
	case prdetail.ID:
		return panel.Wrap(prdetail.New(deps, cfg.PRDetail))
	case gitconfig.ID:
		return panel.Wrap(gitconfig.New(deps, cfg.GitConfig))
	}
	return nil
}

// Init starts the panels' mount commands and the host listeners.
func (m Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{}, m.startup...)
	cmds = append(cmds, m.inbox.Next(), m.changes.Listen(), tea.SetWindowTitle("gitpanes"))
	return tea.Batch(cmds...)
}

// Close unmounts every panel and releases the host subscriptions.
func (m Model) Close() {
	regs := make([]panel.Registration, 0, len(m.panels))
	for _, t := range m.tabs {
		for _, id := range t.panes {
			regs = append(regs, m.panels[id].Registration())
			m.panels[id] = m.panels[id].Unmount()
		}
	}
	m.inbox.Close()
	m.events.close()
	m.cancel()
	panel.OnPackageUnload(regs...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.resize(), nil

	case panel.EventMsg:
		if !m.inbox.Accepts(msg) {
			return m.broadcast(msg)
		}
		var cmd tea.Cmd
		m, cmd = m.handleEvent(msg.Event)
		return m, tea.Batch(cmd, m.inbox.Next())

	case detailMsg:
		return m.handleDetail(msg), nil

	case pubsub.Event[slice.Change]:
		if msg.Payload.Err != "" && !msg.Payload.Loading {
			log.Debug(log.CatHost, "slice refresh failed", "slice", string(msg.Payload.Name), "error", msg.Payload.Err)
		}
		return m, m.changes.Listen()

	case panel.StatusMsg:
		m.status = newStatus(msg.Text, msg.Err)
		return m, nil

	case shared.ActionExecutedMsg:
		if msg.Err != nil {
			m.status = newStatus(msg.Name, msg.Err)
		} else {
			m.status = newStatus("Ran "+msg.Name, nil)
		}
		return m, nil

	case reloadedMsg:
		m.status = newStatus("Reloaded all panels", nil)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m.broadcast(msg)
}

// broadcast hands msg to every panel. Panels drop what is not theirs.
func (m Model) broadcast(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for id, p := range m.panels {
		var cmd tea.Cmd
		m.panels[id], cmd = p.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleEvent(e event.Event) (Model, tea.Cmd) {
	switch e.Type {
	case event.CommitSelected:
		p, ok := event.PayloadAs[event.CommitSelection](e)
		if !ok {
			log.Warn(log.CatHost, "unexpected payload", "type", string(e.Type))
			return m, nil
		}
		return m.openCommit(p.Hash)
	case event.CommitDeselected:
		m.pending = ""
		return m.focusPanel(commithistory.ID), nil
	case event.PullRequestSelected:
		return m.focusPanel(prdetail.ID), nil
	case event.PullRequestDeselected:
		return m.focusPanel(pullrequests.ID), nil
	}
	return m, nil
}

// openCommit announces the load to the detail panel and fetches the commit.
func (m Model) openCommit(hash string) (Model, tea.Cmd) {
	if _, ok := m.panels[commitdetail.ID]; !ok {
		return m, nil
	}
	m.pending = hash
	m.deps.Bus.Emit(event.New(event.CommitDetailLoading, Source, event.CommitSelection{Hash: hash}))
	m = m.focusPanel(commitdetail.ID)

	if err := domain.ValidateHash(hash); err != nil {
		return m, func() tea.Msg { return detailMsg{hash: hash, err: err} }
	}
	if m.deps.Loader == nil {
		return m, func() tea.Msg {
			return detailMsg{hash: hash, err: fmt.Errorf("no commit source configured")}
		}
	}

	ctx, loader := m.ctx, m.deps.Loader
	return m, func() tea.Msg {
		ctx, span := tracing.Tracer().Start(ctx, "dashboard.commit_detail",
			trace.WithAttributes(attribute.String("commit.hash", hash)))
		defer span.End()

		detail, err := loader.CommitDetail(ctx, hash)
		if err != nil {
			span.RecordError(err)
		}
		return detailMsg{hash: hash, detail: detail, err: err}
	}
}

// handleDetail publishes a fetched detail unless a newer selection replaced it.
func (m Model) handleDetail(msg detailMsg) Model {
	if msg.hash != m.pending {
		log.Debug(log.CatHost, "dropping stale commit detail", "hash", msg.hash)
		return m
	}
	m.pending = ""
	if msg.err != nil {
		m.deps.Bus.Emit(event.New(event.CommitDetailError, Source,
			event.CommitFailure{Hash: msg.hash, Error: msg.err.Error()}))
		return m
	}
	m.deps.Bus.Emit(event.New(event.CommitDetailLoaded, Source, event.CommitLoaded{Commit: msg.detail}))
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.palette.active {
		var (
			cmd       tea.Cmd
			line      string
			submitted bool
		)
		m.palette, cmd, line, submitted = m.palette.update(msg)
		if submitted {
			m = m.runTool(line)
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.QuitList) && !isDetail(m.focusedID()):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m.resize(), nil
	case key.Matches(msg, keys.Palette):
		var cmd tea.Cmd
		m.palette, cmd = m.palette.open()
		return m, cmd
	case key.Matches(msg, keys.NextTab):
		return m.switchTab(m.active + 1), nil
	case key.Matches(msg, keys.PrevTab):
		return m.switchTab(m.active - 1), nil
	case key.Matches(msg, keys.Tab1):
		return m.jumpToTab(0), nil
	case key.Matches(msg, keys.Tab2):
		return m.jumpToTab(1), nil
	case key.Matches(msg, keys.Tab3):
		return m.jumpToTab(2), nil
	case key.Matches(msg, keys.FocusNext):
		return m.cycleFocus(1), nil
	case key.Matches(msg, keys.FocusPrev):
		return m.cycleFocus(-1), nil
	case key.Matches(msg, keys.RefreshAll):
		return m, m.reloadAll()
	}

	if action, name, ok := shared.MatchUserAction(msg, m.cfg.Actions); ok {
		log.Debug(log.CatHost, "user action", "name", name, "key", action.Key)
		return m, shared.ExecuteAction(action, m.actionContext(), m.cfg.WorkDir)
	}

	id := m.focusedID()
	if id == "" {
		return m, nil
	}
	var cmd tea.Cmd
	m.panels[id], cmd = m.panels[id].Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	for i := range m.tabs {
		if panel.Clicked(msg, tabZone(i)) {
			return m.switchTab(i), nil
		}
	}
	if len(m.tabs) == 0 {
		return m, nil
	}

	var cmds []tea.Cmd
	for i, id := range m.tabs[m.active].panes {
		if panel.Clicked(msg, paneZone(id)) && i != m.focus {
			m.focus = i
			m = m.applyFocus()
		}
		var cmd tea.Cmd
		m.panels[id], cmd = m.panels[id].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// reloadAll drops cached details and refreshes every slice.
func (m Model) reloadAll() tea.Cmd {
	if p, ok := m.deps.Loader.(interface{ Purge() }); ok {
		p.Purge()
	}
	ctx, store := m.ctx, m.deps.Store
	return func() tea.Msg {
		slice.RefreshQuietly(ctx, store, slice.ScopeAny, "")
		return reloadedMsg{}
	}
}

// runTool invokes a palette line of the form "tool_name {json}".
func (m Model) runTool(line string) Model {
	name, input := parseToolLine(line)
	if name == "" {
		return m
	}
	out, err := m.invoker.Invoke(m.ctx, name, []byte(input))
	if err != nil {
		m.status = newStatus(name, err)
		return m
	}
	m.status = newStatus(toolSummary(name, out), nil)
	return m
}

// actionContext describes the item under the cursor of the focused tab.
func (m Model) actionContext() shared.ActionContext {
	switch m.focusedID() {
	case commitdetail.ID:
		if d, ok := unwrap[commitdetail.Model](m.panels, commitdetail.ID); ok {
			if c, ok := d.Commit(); ok {
				return shared.CommitContext(c.CommitInfo)
			}
		}
		fallthrough
	case commithistory.ID:
		if l, ok := unwrap[commithistory.Model](m.panels, commithistory.ID); ok {
			if c, ok := l.Selected(); ok {
				return shared.CommitContext(c)
			}
		}
	case prdetail.ID:
		if d, ok := unwrap[prdetail.Model](m.panels, prdetail.ID); ok {
			if pr, ok := d.PullRequest(); ok {
				return shared.PullRequestContext(pr)
			}
		}
		fallthrough
	case pullrequests.ID:
		if l, ok := unwrap[pullrequests.Model](m.panels, pullrequests.ID); ok {
			if pr, ok := l.Selected(); ok {
				return shared.PullRequestContext(pr)
			}
		}
	}
	return shared.ActionContext{}
}

func unwrap[M panel.Component[M]](panels map[string]panel.Panel, id string) (M, bool) {
	p, ok := panels[id]
	if !ok {
		var zero M
		return zero, false
	}
	return panel.Unwrap[M](p)
}

// focusedID returns the panel that receives key input.
func (m Model) focusedID() string {
	if len(m.tabs) == 0 {
		return ""
	}
	panes := m.tabs[m.active].panes
	return panes[min(m.focus, len(panes)-1)]
}

// ActiveTab returns the title of the visible tab.
func (m Model) ActiveTab() string {
	if len(m.tabs) == 0 {
		return ""
	}
	return m.tabs[m.active].title
}

// Focused returns the ID of the focused panel.
func (m Model) Focused() string { return m.focusedID() }

func (m Model) switchTab(i int) Model {
	if len(m.tabs) == 0 {
		return m
	}
	m.active = (i%len(m.tabs) + len(m.tabs)) % len(m.tabs)
	m.focus = 0
	return m.applyFocus()
}

// jumpToTab selects tab i by position. Numbers past the last tab do nothing.
func (m Model) jumpToTab(i int) Model {
	if i < 0 || i >= len(m.tabs) {
		return m
	}
	return m.switchTab(i)
}

func (m Model) cycleFocus(delta int) Model {
	if len(m.tabs) == 0 {
		return m
	}
	n := len(m.tabs[m.active].panes)
	m.focus = ((m.focus+delta)%n + n) % n
	return m.applyFocus()
}

// focusPanel shows the tab holding id and focuses it. Unknown IDs are ignored.
func (m Model) focusPanel(id string) Model {
	for ti, t := range m.tabs {
		for pi, pid := range t.panes {
			if pid == id {
				m.active, m.focus = ti, pi
				return m.applyFocus()
			}
		}
	}
	return m
}

// applyFocus focuses exactly one panel and re-lays out, since the help line
// depends on the focused panel.
func (m Model) applyFocus() Model {
	focused := m.focusedID()
	for id, p := range m.panels {
		if id == focused {
			m.panels[id] = p.Focus()
		} else {
			m.panels[id] = p.Blur()
		}
	}
	return m.resize()
}
