package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/slice"
)

type recorder struct {
	events []event.Event
}

func newRecorder(bus *event.Bus) *recorder {
	r := &recorder{}
	bus.OnAll(func(e event.Event) { r.events = append(r.events, e) })
	return r
}

func (r *recorder) last(t *testing.T) event.Event {
	t.Helper()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}

func testStore(t *testing.T) *slice.MemoryStore {
	t.Helper()
	store := slice.NewMemoryStore()
	store.Register(slice.ScopeRepository, slice.NameCommits, nil)
	store.Register(slice.ScopeRepository, slice.NamePullRequests, nil)
	require.NoError(t, store.Set(slice.ScopeRepository, slice.NameCommits, []domain.CommitInfo{
		{Hash: "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678", Message: "one"},
		{Hash: "a1b2ffff00000000000000000000000000000000", Message: "two"},
		{Hash: "9f8e7d6c5b4a39281706f5e4d3c2b1a098765432", Message: "three"},
	}))
	require.NoError(t, store.Set(slice.ScopeRepository, slice.NamePullRequests, []domain.PullRequest{
		{ID: 1, Number: 12, Title: "Add panels", State: domain.PRStateOpen},
		{ID: 2, Number: 7, Title: "Fix dates", State: domain.PRStateClosed},
	}))
	return store
}

func TestCatalog_Complete(t *testing.T) {
	descs := Catalog()
	require.Len(t, descs, 10)

	seen := map[string]bool{}
	for _, d := range descs {
		require.False(t, seen[d.Name], "duplicate %s", d.Name)
		seen[d.Name] = true
		require.True(t, d.Dispatch.Emits.Known(), d.Name)
		require.NotEmpty(t, d.Description)
		require.Equal(t, "object", d.Input.Type)
		for _, req := range d.Input.Required {
			require.Contains(t, d.Input.Properties, req)
		}
		_, ok := builders[d.Name]
		require.True(t, ok, "no builder for %s", d.Name)
	}
}

func TestForPanel(t *testing.T) {
	require.Equal(t, []string{RefreshCommitHistory, SetCommitHistoryLimit, SelectCommit}, ForPanel(PanelCommitHistory))
	require.Equal(t, []string{CloseCommitDetail}, ForPanel(PanelCommitDetail))
	require.Equal(t, []string{RefreshGitConfig, SetGitConfigView}, ForPanel(PanelGitConfig))
	require.Empty(t, ForPanel("nope"))
}

func TestExport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FormatYAML, Catalog()))

	var back []Descriptor
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 10)
	require.Contains(t, buf.String(), "input_schema:")
	require.Contains(t, buf.String(), "pull-requests:set-filter")
}

func TestExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FormatJSON, Catalog()))

	var back []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 10)
	require.Equal(t, SetCommitHistoryLimit, back[1]["name"])
}

func TestExport_UnknownFormat(t *testing.T) {
	require.Error(t, Export(&bytes.Buffer{}, "toml", Catalog()))
}

func TestInvoke_EmitsTypedPayloads(t *testing.T) {
	tests := []struct {
		tool    string
		input   string
		typ     event.Type
		payload any
	}{
		{RefreshCommitHistory, ``, event.CommitHistoryRefresh, event.Empty{}},
		{SetCommitHistoryLimit, `{"limit": 10}`, event.CommitHistorySetLimit, event.LimitChange{Limit: 10}},
		{CloseCommitDetail, `{}`, event.CommitDeselected, event.Empty{}},
		{RefreshPullRequests, `{}`, event.PullRequestsRefresh, event.Empty{}},
		{FilterPullRequests, `{"filter":"all"}`, event.PullRequestsSetFilter, event.FilterChange{Filter: event.FilterAll}},
		{ClosePullRequestDetail, `{}`, event.PullRequestDeselected, event.Empty{}},
		{RefreshGitConfig, `{}`, event.ConfigRefresh, event.Empty{}},
		{SetGitConfigView, `{"mode":"detailed"}`, event.ConfigSetView, event.ViewChange{Mode: event.ViewDetailed}},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			bus := event.NewBus()
			rec := newRecorder(bus)
			iv := NewInvoker(bus, testStore(t))

			out, err := iv.Invoke(context.Background(), tt.tool, []byte(tt.input))
			require.NoError(t, err)

			e := rec.last(t)
			require.Equal(t, tt.typ, e.Type)
			require.Equal(t, Source, e.Source)
			require.Equal(t, tt.payload, e.Payload)

			var doc map[string]string
			require.NoError(t, json.Unmarshal(out, &doc))
			require.Equal(t, string(tt.typ), doc["emitted"])
			require.Equal(t, e.ID, doc["event_id"])
		})
	}
}

func TestInvoke_SelectCommitExpandsPrefix(t *testing.T) {
	bus := event.NewBus()
	rec := newRecorder(bus)
	iv := NewInvoker(bus, testStore(t))

	_, err := iv.Invoke(context.Background(), SelectCommit, []byte(`{"hash":"9F8E7D"}`))
	require.NoError(t, err)
	sel, ok := event.PayloadAs[event.CommitSelection](rec.last(t))
	require.True(t, ok)
	require.Equal(t, "9f8e7d6c5b4a39281706f5e4d3c2b1a098765432", sel.Hash)
}

func TestInvoke_SelectCommitErrors(t *testing.T) {
	iv := NewInvoker(event.NewBus(), testStore(t))

	_, err := iv.Invoke(context.Background(), SelectCommit, []byte(`{"hash":"a1b2"}`))
	require.ErrorIs(t, err, ErrInvalidInput, "ambiguous prefix")

	_, err = iv.Invoke(context.Background(), SelectCommit, []byte(`{"hash":"deadbeef"}`))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInvoke_SelectCommitWithoutSlicePassesThrough(t *testing.T) {
	bus := event.NewBus()
	rec := newRecorder(bus)
	iv := NewInvoker(bus, slice.NewMemoryStore())

	_, err := iv.Invoke(context.Background(), SelectCommit, []byte(`{"hash":"abc123"}`))
	require.NoError(t, err)
	require.Equal(t, event.CommitSelection{Hash: "abc123"}, rec.last(t).Payload)
}

func TestInvoke_SelectPullRequest(t *testing.T) {
	bus := event.NewBus()
	rec := newRecorder(bus)
	iv := NewInvoker(bus, testStore(t))

	_, err := iv.Invoke(context.Background(), SelectPullRequest, []byte(`{"number":7}`))
	require.NoError(t, err)
	sel, ok := event.PayloadAs[event.PullRequestSelection](rec.last(t))
	require.True(t, ok)
	require.Equal(t, "Fix dates", sel.PR.Title)

	_, err = iv.Invoke(context.Background(), SelectPullRequest, []byte(`{"number":99}`))
	require.ErrorIs(t, err, ErrNotFound)

	_, err = NewInvoker(bus, slice.NewMemoryStore()).Invoke(context.Background(), SelectPullRequest, []byte(`{"number":7}`))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInvoke_Errors(t *testing.T) {
	tests := []struct {
		name  string
		tool  string
		input string
		want  error
	}{
		{"unknown tool", "delete_repository", `{}`, ErrUnknownTool},
		{"malformed json", SetCommitHistoryLimit, `{"limit":`, ErrInvalidInput},
		{"not an object", SetCommitHistoryLimit, `[1]`, ErrInvalidInput},
		{"missing field", SetCommitHistoryLimit, `{}`, ErrInvalidInput},
		{"wrong type", SetCommitHistoryLimit, `{"limit":"ten"}`, ErrInvalidInput},
		{"fractional", SetCommitHistoryLimit, `{"limit":2.5}`, ErrInvalidInput},
		{"below minimum", SetCommitHistoryLimit, `{"limit":0}`, ErrInvalidInput},
		{"bad enum", FilterPullRequests, `{"filter":"merged"}`, ErrInvalidInput},
		{"bad mode", SetGitConfigView, `{"mode":"tree"}`, ErrInvalidInput},
		{"empty hash", SelectCommit, `{"hash":"  "}`, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := event.NewBus()
			rec := newRecorder(bus)
			iv := NewInvoker(bus, testStore(t))

			_, err := iv.Invoke(context.Background(), tt.tool, []byte(tt.input))
			require.ErrorIs(t, err, tt.want)
			require.Empty(t, rec.events, "nothing emitted on error")
		})
	}
}
