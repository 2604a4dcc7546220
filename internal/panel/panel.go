package panel

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/log"
	"github.com/zjrosen/gitpanes/internal/slice"
)

// Clipboard copies text for the user.
type Clipboard interface {
	Copy(text string) error
}

// Deps are the host services a panel is built with.
type Deps struct {
	Bus       event.Channel
	Store     slice.Store
	Clipboard Clipboard
	Now       func() time.Time // defaults to time.Now
}

// Clock returns the current time from Now.
func (d Deps) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Panel is the type-erased view of a panel used by hosts.
type Panel interface {
	Registration() Registration
	Mount(ctx context.Context) (Panel, tea.Cmd)
	Unmount() Panel
	Update(msg tea.Msg) (Panel, tea.Cmd)
	View() string
	SetSize(width, height int) Panel
	Focus() Panel
	Blur() Panel
}

// Component is implemented by a panel model with its own concrete type.
type Component[M any] interface {
	Registration() Registration
	Mount(ctx context.Context) (M, tea.Cmd)
	Unmount() M
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
	SetSize(width, height int) M
	Focus() M
	Blur() M
}

type wrapped[M Component[M]] struct {
	m M
}

// Wrap adapts a concrete panel model to Panel.
func Wrap[M Component[M]](m M) Panel {
	return wrapped[M]{m: m}
}

// Unwrap returns the concrete model inside p.
func Unwrap[M Component[M]](p Panel) (M, bool) {
	w, ok := p.(wrapped[M])
	return w.m, ok
}

func (w wrapped[M]) Registration() Registration { return w.m.Registration() }
func (w wrapped[M]) View() string               { return w.m.View() }
func (w wrapped[M]) Unmount() Panel             { return wrapped[M]{m: w.m.Unmount()} }
func (w wrapped[M]) Focus() Panel               { return wrapped[M]{m: w.m.Focus()} }
func (w wrapped[M]) Blur() Panel                { return wrapped[M]{m: w.m.Blur()} }

// Helper is implemented by panels that advertise their key bindings.
type Helper interface {
	ShortHelp() []key.Binding
}

// ShortHelp forwards to the wrapped model when it implements Helper.
func (w wrapped[M]) ShortHelp() []key.Binding {
	if h, ok := any(w.m).(Helper); ok {
		return h.ShortHelp()
	}
	return nil
}

func (w wrapped[M]) Mount(ctx context.Context) (Panel, tea.Cmd) {
	m, cmd := w.m.Mount(ctx)
	return wrapped[M]{m: m}, cmd
}

func (w wrapped[M]) Update(msg tea.Msg) (Panel, tea.Cmd) {
	m, cmd := w.m.Update(msg)
	return wrapped[M]{m: m}, cmd
}

func (w wrapped[M]) SetSize(width, height int) Panel {
	return wrapped[M]{m: w.m.SetSize(width, height)}
}

// RefreshedMsg is returned when a refresh requested by a panel finishes.
type RefreshedMsg struct {
	Name slice.Name
}

// Refresh returns a command that refreshes the named slice in the
// background. Failures are logged, never returned.
func Refresh(ctx context.Context, store slice.Store, name slice.Name) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		slice.RefreshQuietly(ctx, store, slice.ScopeAny, name)
		return RefreshedMsg{Name: name}
	}
}

// InitialRefresh is the on-mount refresh: it only runs when the host
// provides the slice and is not already loading it.
func InitialRefresh(ctx context.Context, store slice.Store, name slice.Name) tea.Cmd {
	if store == nil || !store.HasSlice(name) || store.IsSliceLoading(name) {
		return nil
	}
	return Refresh(ctx, store, name)
}

// OnPackageLoad is called by the host when the panel package is loaded.
func OnPackageLoad(regs ...Registration) {
	for _, r := range regs {
		log.Info(log.CatUI, "panel loaded", "id", r.ID, "version", r.Version)
	}
}

// OnPackageUnload is called by the host before the panel package goes away.
func OnPackageUnload(regs ...Registration) {
	for _, r := range regs {
		log.Info(log.CatUI, "panel unloaded", "id", r.ID)
	}
}
