package panel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gitpanes/internal/mocks"
	"github.com/zjrosen/gitpanes/internal/slice"
)

func TestInitialRefresh_MissingSlice(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().HasSlice(slice.NameCommits).Return(false)

	require.Nil(t, InitialRefresh(context.Background(), store, slice.NameCommits))
}

func TestInitialRefresh_AlreadyLoading(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().HasSlice(slice.NameCommits).Return(true)
	store.EXPECT().IsSliceLoading(slice.NameCommits).Return(true)

	require.Nil(t, InitialRefresh(context.Background(), store, slice.NameCommits))
}

func TestInitialRefresh_Refreshes(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().HasSlice(slice.NameGitConfig).Return(true)
	store.EXPECT().IsSliceLoading(slice.NameGitConfig).Return(false)
	store.EXPECT().Refresh(mock.Anything, slice.ScopeAny, slice.NameGitConfig).Return(nil).Once()

	cmd := InitialRefresh(context.Background(), store, slice.NameGitConfig)
	require.NotNil(t, cmd)
	require.Equal(t, RefreshedMsg{Name: slice.NameGitConfig}, cmd())
}

func TestRefresh_SwallowsRejection(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().Refresh(mock.Anything, slice.ScopeAny, slice.NamePullRequests).
		Return(errors.New("rate limited")).Once()

	msg := Refresh(context.Background(), store, slice.NamePullRequests)()
	require.Equal(t, RefreshedMsg{Name: slice.NamePullRequests}, msg)
}

func TestRefresh_NilStore(t *testing.T) {
	require.Nil(t, Refresh(context.Background(), nil, slice.NameCommits))
	require.Nil(t, InitialRefresh(context.Background(), nil, slice.NameCommits))
}

func TestDeps_Clock(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	require.Equal(t, fixed, Deps{Now: func() time.Time { return fixed }}.Clock())
	require.WithinDuration(t, time.Now(), Deps{}.Clock(), time.Second)
}

type counter struct {
	n       int
	mounted bool
	focused bool
	w, h    int
}

func (c counter) Registration() Registration { return Registration{ID: "counter"} }
func (c counter) Mount(context.Context) (counter, tea.Cmd) {
	c.mounted = true
	return c, nil
}
func (c counter) Unmount() counter { c.mounted = false; return c }
func (c counter) Update(tea.Msg) (counter, tea.Cmd) {
	c.n++
	return c, nil
}
func (c counter) View() string             { return "counter" }
func (c counter) SetSize(w, h int) counter { c.w, c.h = w, h; return c }
func (c counter) Focus() counter           { c.focused = true; return c }
func (c counter) Blur() counter            { c.focused = false; return c }

func TestWrap_RoundTrip(t *testing.T) {
	p := Wrap(counter{})
	p, _ = p.Mount(context.Background())
	p, _ = p.Update(nil)
	p, _ = p.Update(nil)
	p = p.SetSize(10, 4).Focus()

	c, ok := Unwrap[counter](p)
	require.True(t, ok)
	require.Equal(t, counter{n: 2, mounted: true, focused: true, w: 10, h: 4}, c)
	require.Equal(t, "counter", p.View())
	require.Equal(t, "counter", p.Registration().ID)

	c, _ = Unwrap[counter](p.Unmount().Blur())
	require.False(t, c.mounted)
	require.False(t, c.focused)
}

type helpful struct{}

func (h helpful) Registration() Registration               { return Registration{ID: "helpful"} }
func (h helpful) Mount(context.Context) (helpful, tea.Cmd) { return h, nil }
func (h helpful) Unmount() helpful                         { return h }
func (h helpful) Update(tea.Msg) (helpful, tea.Cmd)        { return h, nil }
func (h helpful) View() string                             { return "" }
func (h helpful) SetSize(int, int) helpful                 { return h }
func (h helpful) Focus() helpful                           { return h }
func (h helpful) Blur() helpful                            { return h }
func (h helpful) ShortHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "do it"))}
}

func TestWrap_ShortHelp(t *testing.T) {
	h, ok := Wrap(counter{}).(Helper)
	require.True(t, ok)
	require.Nil(t, h.ShortHelp())

	h = Wrap(helpful{}).(Helper)
	require.Len(t, h.ShortHelp(), 1)
	require.Equal(t, "do it", h.ShortHelp()[0].Help().Desc)
}
