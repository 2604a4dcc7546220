package prdetail

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/mocks"
	"github.com/zjrosen/gitpanes/internal/panel"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func mergedPR() domain.PullRequest {
	return domain.PullRequest{
		Number:         42,
		Title:          "Speed up status",
		Body:           "Caches the index between calls.",
		State:          domain.PRStateClosed,
		HTMLURL:        "https://example.com/acme/app/pull/42",
		User:           &domain.PRUser{Login: "grace"},
		CreatedAt:      "2024-05-01T00:00:00Z",
		UpdatedAt:      "2024-05-31T12:00:00Z",
		ClosedAt:       strPtr("2024-05-31T12:00:00Z"),
		MergedAt:       strPtr("2024-05-31T12:00:00Z"),
		Base:           &domain.PRRef{Ref: "main"},
		Head:           &domain.PRRef{Ref: "fast-status"},
		Comments:       intPtr(4),
		ReviewComments: intPtr(1),
	}
}

// upper is a markdown renderer that makes its use visible in the output.
type upper struct{}

func (upper) Render(md string, _ int) string { return strings.ToUpper(md) }

type harness struct {
	bus  *event.Bus
	clip *mocks.MockClipboard
	m    Model
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	h := &harness{bus: event.NewBus(), clip: mocks.NewMockClipboard(t)}
	m := New(panel.Deps{Bus: h.bus, Clipboard: h.clip, Now: func() time.Time { return now }}, cfg)
	m, _ = m.Mount(context.Background())
	h.m = m.SetSize(80, 30).Focus()
	t.Cleanup(func() { h.m.Unmount() })
	return h
}

func (h *harness) selectPR(t *testing.T, pr domain.PullRequest) {
	t.Helper()
	h.bus.Emit(event.New(event.PullRequestSelected, "pull-requests", event.PullRequestSelection{PR: pr}))
	msg := h.m.inbox.Next()()
	require.IsType(t, panel.EventMsg{}, msg)
	h.m, _ = h.m.Update(msg)
}

func (h *harness) press(s string) tea.Cmd {
	k := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	if s == "esc" {
		k = tea.KeyMsg{Type: tea.KeyEsc}
	}
	var cmd tea.Cmd
	h.m, cmd = h.m.Update(k)
	return cmd
}

func TestEmptyState(t *testing.T) {
	h := newHarness(t, Config{})
	require.Equal(t, StateEmpty, h.m.State())
	require.Contains(t, ansi.Strip(h.m.View()), "Select a pull request")
	_, ok := h.m.PullRequest()
	require.False(t, ok)
}

func TestSelectedShowsPullRequest(t *testing.T) {
	h := newHarness(t, Config{})
	h.selectPR(t, mergedPR())
	require.Equal(t, StateLoaded, h.m.State())

	view := ansi.Strip(h.m.View())
	require.Contains(t, view, "#42 Speed up status")
	require.Contains(t, view, "Merged by grace")
	require.Contains(t, view, "fast-status → main")
	require.Contains(t, view, "1 month ago")
	require.Contains(t, view, "Yesterday")
	require.Contains(t, view, "5💬")
	require.Contains(t, view, "Caches the index between calls.")
	require.Contains(t, view, "https://example.com/acme/app/pull/42")
}

func TestMarkdownRendererInjected(t *testing.T) {
	h := newHarness(t, Config{Markdown: upper{}})
	h.selectPR(t, mergedPR())
	require.Contains(t, ansi.Strip(h.m.View()), "CACHES THE INDEX BETWEEN CALLS.")
}

func TestNoBodyOrComments(t *testing.T) {
	h := newHarness(t, Config{})
	pr := domain.PullRequest{Number: 3, Title: "Tiny", State: domain.PRStateOpen, CreatedAt: "bad"}
	h.selectPR(t, pr)

	view := ansi.Strip(h.m.View())
	require.Contains(t, view, "Open")
	require.Contains(t, view, "No description provided.")
	require.Contains(t, view, "Unknown")
	require.Contains(t, view, "none")
	require.NotContains(t, view, "Branch")
}

func TestInconsistentPullRequestShowsError(t *testing.T) {
	h := newHarness(t, Config{})
	pr := mergedPR()
	pr.State = domain.PRStateOpen
	h.selectPR(t, pr)

	require.Equal(t, StateError, h.m.State())
	require.Contains(t, ansi.Strip(h.m.View()), "Cannot show pull request")
}

func TestCloseEmitsDeselected(t *testing.T) {
	h := newHarness(t, Config{})
	var got []event.Event
	h.bus.On(event.PullRequestDeselected, func(e event.Event) { got = append(got, e) })

	h.selectPR(t, mergedPR())
	h.press("esc")
	require.Equal(t, StateEmpty, h.m.State())
	require.Len(t, got, 1)
	require.Equal(t, ID, got[0].Source)

	h.press("q")
	require.Len(t, got, 1)
}

func TestCopyURL(t *testing.T) {
	h := newHarness(t, Config{})
	h.selectPR(t, mergedPR())

	h.clip.EXPECT().Copy("https://example.com/acme/app/pull/42").Return(nil).Once()
	cmd := h.press("y")
	require.NotNil(t, cmd)
	require.Equal(t, panel.StatusMsg{Text: "Copied pull request URL"}, cmd())
}

func TestSelectionReplacesPrevious(t *testing.T) {
	h := newHarness(t, Config{})
	h.selectPR(t, mergedPR())
	next := mergedPR()
	next.Number = 43
	next.Title = "Second"
	h.selectPR(t, next)

	pr, ok := h.m.PullRequest()
	require.True(t, ok)
	require.Equal(t, 43, pr.Number)
}

func TestUnmountStopsUpdates(t *testing.T) {
	h := newHarness(t, Config{})
	require.Equal(t, 1, h.bus.SubscriptionCount(event.PullRequestSelected))
	h.m = h.m.Unmount()
	require.Zero(t, h.bus.SubscriptionCount())

	h.bus.Emit(event.New(event.PullRequestSelected, "pull-requests", event.PullRequestSelection{PR: mergedPR()}))
	require.Equal(t, StateEmpty, h.m.State())
}
