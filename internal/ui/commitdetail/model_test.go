package commitdetail

import (
	"context"
	"errors"
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

const hash = "abcdef0123456789abcdef0123456789abcdef01"

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func sampleDetail() domain.CommitDetail {
	return domain.CommitDetail{
		CommitInfo: domain.CommitInfo{
			Hash:        hash,
			Message:     "Add retry to fetcher\n\nRetries transient failures twice before giving up.",
			Author:      "Ada",
			AuthorEmail: "ada@example.com",
			Date:        "2024-06-01T10:00:00Z",
		},
		Stats: domain.CommitStats{Additions: 12, Deletions: 3, Total: 15},
		Files: []domain.FileChange{
			{Filename: "fetch/retry.go", Status: domain.FileAdded, Additions: 10},
			{Filename: "fetch/fetch.go", Status: domain.FileModified, Additions: 2, Deletions: 1},
			{Filename: "fetch/old.go", Status: domain.FileRemoved, Deletions: 2},
			{Filename: "fetch/client.go", PreviousFilename: "fetch/http.go", Status: domain.FileRenamed},
		},
	}
}

type harness struct {
	bus  *event.Bus
	clip *mocks.MockClipboard
	m    Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{bus: event.NewBus(), clip: mocks.NewMockClipboard(t)}
	m := New(panel.Deps{Bus: h.bus, Clipboard: h.clip, Now: func() time.Time { return now }})
	m, _ = m.Mount(context.Background())
	h.m = m.SetSize(80, 30).Focus()
	t.Cleanup(func() { h.m.Unmount() })
	return h
}

func (h *harness) emit(t *testing.T, typ event.Type, payload any) {
	t.Helper()
	h.bus.Emit(event.New(typ, "host", payload))
	msg := h.m.inbox.Next()()
	require.IsType(t, panel.EventMsg{}, msg)
	h.m, _ = h.m.Update(msg)
}

func (h *harness) press(s string) tea.Cmd {
	var k tea.KeyMsg
	switch s {
	case "esc":
		k = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		k = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	var cmd tea.Cmd
	h.m, cmd = h.m.Update(k)
	return cmd
}

func (h *harness) view() string { return ansi.Strip(h.m.View()) }

func TestInitialState(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, StateEmpty, h.m.State())
	require.Contains(t, h.view(), "Select a commit")
}

func TestMountSubscriptions(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 3, h.bus.SubscriptionCount(Listens...))

	h.m = h.m.Unmount()
	require.Zero(t, h.bus.SubscriptionCount())
}

func TestLoadingThenLoaded(t *testing.T) {
	h := newHarness(t)

	h.emit(t, event.CommitDetailLoading, event.CommitSelection{Hash: hash})
	require.Equal(t, StateLoading, h.m.State())
	require.Contains(t, h.view(), "Loading commit abcdef01")

	_, ok := h.m.Commit()
	require.False(t, ok)

	h.emit(t, event.CommitDetailLoaded, event.CommitLoaded{Commit: sampleDetail()})
	require.Equal(t, StateLoaded, h.m.State())
	c, ok := h.m.Commit()
	require.True(t, ok)
	require.Equal(t, sampleDetail().Hash, c.Hash)

	view := h.view()
	require.Contains(t, view, "Add retry to fetcher")
	require.Contains(t, view, "abcdef01")
	require.NotContains(t, view, "abcdef012")
	require.Contains(t, view, "+12 −3 (15)")
	require.Contains(t, view, "Ada <ada@example.com>")
	require.Contains(t, view, "2024-06-01 10:00 UTC")
	require.Contains(t, view, "2 hours ago")
	require.Contains(t, view, "Retries transient failures")
	require.Contains(t, view, "Files (4)")
	require.Contains(t, view, "A fetch/retry.go")
	require.Contains(t, view, "M fetch/fetch.go")
	require.Contains(t, view, "D fetch/old.go")
	require.Contains(t, view, "R fetch/http.go → fetch/client.go")
}

func TestErrorOverridesLoaded(t *testing.T) {
	h := newHarness(t)
	h.emit(t, event.CommitDetailLoaded, event.CommitLoaded{Commit: sampleDetail()})
	h.emit(t, event.CommitDetailError, event.CommitFailure{Hash: hash, Error: "X"})

	require.Equal(t, StateError, h.m.State())
	view := h.view()
	require.Contains(t, view, "Failed to load commit abcdef01: X")
	require.NotContains(t, view, "Add retry to fetcher")
}

func TestUnexpectedPayloadIgnored(t *testing.T) {
	h := newHarness(t)
	h.emit(t, event.CommitDetailLoaded, "not a commit")
	require.Equal(t, StateEmpty, h.m.State())
}

func TestCloseEmitsDeselected(t *testing.T) {
	h := newHarness(t)
	var got []event.Event
	h.bus.On(event.CommitDeselected, func(e event.Event) { got = append(got, e) })

	h.emit(t, event.CommitDetailLoaded, event.CommitLoaded{Commit: sampleDetail()})
	h.press("esc")

	require.Equal(t, StateEmpty, h.m.State())
	require.Len(t, got, 1)
	require.Equal(t, ID, got[0].Source)
	require.Equal(t, event.Empty{}, got[0].Payload)

	// Closing an empty panel is a no-op.
	h.press("q")
	require.Len(t, got, 1)
}

func TestCloseFromError(t *testing.T) {
	h := newHarness(t)
	var got int
	h.bus.On(event.CommitDeselected, func(event.Event) { got++ })

	h.emit(t, event.CommitDetailError, event.CommitFailure{Hash: hash, Error: "boom"})
	h.press("q")
	require.Equal(t, StateEmpty, h.m.State())
	require.Equal(t, 1, got)
}

func TestCopyHash(t *testing.T) {
	h := newHarness(t)
	h.emit(t, event.CommitDetailLoaded, event.CommitLoaded{Commit: sampleDetail()})

	h.clip.EXPECT().Copy(hash).Return(nil).Once()
	cmd := h.press("y")
	require.NotNil(t, cmd)
	require.Equal(t, panel.StatusMsg{Text: "Copied commit hash"}, cmd())
}

func TestCopyFailureReported(t *testing.T) {
	h := newHarness(t)
	h.emit(t, event.CommitDetailLoading, event.CommitSelection{Hash: hash})

	boom := errors.New("no clipboard")
	h.clip.EXPECT().Copy(hash).Return(boom).Once()
	msg := h.press("y")()
	require.Equal(t, panel.StatusMsg{Text: "copy failed", Err: boom}, msg)
}

func TestCopyWithoutCommit(t *testing.T) {
	h := newHarness(t)
	require.Nil(t, h.press("y"))
}

func TestEventsAfterUnmountIgnored(t *testing.T) {
	h := newHarness(t)
	h.bus.Emit(event.New(event.CommitDetailLoading, "host", event.CommitSelection{Hash: hash}))
	msg := h.m.inbox.Next()()
	h.m = h.m.Unmount()

	h.bus.Emit(event.New(event.CommitDetailError, "host", event.CommitFailure{Error: "late"}))
	h.m, _ = h.m.Update(msg)
	require.Equal(t, StateEmpty, h.m.State())
}

func TestLongMessageScrolls(t *testing.T) {
	h := newHarness(t)
	h.m = h.m.SetSize(60, 8)
	c := sampleDetail()
	c.Message = "Subject\n\n" + strings.Repeat("line\n", 40)
	h.emit(t, event.CommitDetailLoaded, event.CommitLoaded{Commit: c})

	require.True(t, h.m.viewport.AtTop())
	h.press("j")
	require.False(t, h.m.viewport.AtTop())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "empty", StateEmpty.String())
	require.Equal(t, "loading", StateLoading.String())
	require.Equal(t, "loaded", StateLoaded.String())
	require.Equal(t, "error", StateError.String())
}
