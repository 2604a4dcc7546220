package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/log"
	"github.com/zjrosen/gitpanes/internal/slice"
	"github.com/zjrosen/gitpanes/internal/tracing"
)

var (
	ErrUnknownTool  = errors.New("unknown tool")
	ErrInvalidInput = errors.New("invalid tool input")
	ErrNotFound     = errors.New("not found")
)

// Source is the event source stamped on tool emissions.
const Source = "tool"

type builder func(in gjson.Result, store slice.Store) (any, error)

var builders = map[string]builder{
	RefreshCommitHistory:   empty,
	SetCommitHistoryLimit:  setLimit,
	SelectCommit:           selectCommit,
	CloseCommitDetail:      empty,
	RefreshPullRequests:    empty,
	FilterPullRequests:     setFilter,
	SelectPullRequest:      selectPullRequest,
	ClosePullRequestDetail: empty,
	RefreshGitConfig:       empty,
	SetGitConfigView:       setView,
}

func empty(gjson.Result, slice.Store) (any, error) { return event.Empty{}, nil }

func setLimit(in gjson.Result, _ slice.Store) (any, error) {
	return event.LimitChange{Limit: int(in.Get("limit").Int())}, nil
}

func setFilter(in gjson.Result, _ slice.Store) (any, error) {
	return event.FilterChange{Filter: event.PRFilter(in.Get("filter").String())}, nil
}

func setView(in gjson.Result, _ slice.Store) (any, error) {
	return event.ViewChange{Mode: event.ViewMode(in.Get("mode").String())}, nil
}

// Invoker runs tools against a bus and the slices behind it.
type Invoker struct {
	bus   event.Channel
	store slice.Store
}

// NewInvoker creates an invoker. store resolves selections by hash or number.
func NewInvoker(bus event.Channel, store slice.Store) *Invoker {
	return &Invoker{bus: bus, store: store}
}

// Invoke validates input against the tool's schema, emits the tool's event and
// returns a JSON output document.
func (iv *Invoker) Invoke(ctx context.Context, name string, input []byte) ([]byte, error) {
	_, span := tracing.Tracer().Start(ctx, "tool.invoke",
		trace.WithAttributes(attribute.String("tool.name", name)))
	defer span.End()

	out, err := iv.invoke(name, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn(log.CatTool, "tool invocation failed", "tool", name, "error", err.Error())
		return nil, err
	}
	return out, nil
}

func (iv *Invoker) invoke(name string, input []byte) ([]byte, error) {
	desc, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTool)
	}

	if len(strings.TrimSpace(string(input))) == 0 {
		input = []byte("{}")
	}
	if !gjson.ValidBytes(input) {
		return nil, fmt.Errorf("%s: malformed JSON: %w", name, ErrInvalidInput)
	}
	in := gjson.ParseBytes(input)
	if !in.IsObject() {
		return nil, fmt.Errorf("%s: input must be an object: %w", name, ErrInvalidInput)
	}
	if err := validate(desc.Input, in); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	payload, err := builders[name](in, iv.store)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	e := event.New(desc.Dispatch.Emits, Source, payload)
	iv.bus.Emit(e)
	log.Debug(log.CatTool, "tool invoked", "tool", name, "event", string(e.Type))

	return json.Marshal(map[string]string{
		"emitted":  string(e.Type),
		"event_id": e.ID,
	})
}

func validate(schema Schema, in gjson.Result) error {
	for _, field := range schema.Required {
		if !in.Get(field).Exists() {
			return fmt.Errorf("missing required field %q: %w", field, ErrInvalidInput)
		}
	}
	for field, prop := range schema.Properties {
		v := in.Get(field)
		if !v.Exists() {
			continue
		}
		switch prop.Type {
		case "integer":
			if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
				return fmt.Errorf("field %q must be an integer: %w", field, ErrInvalidInput)
			}
			if prop.Minimum != nil && v.Int() < int64(*prop.Minimum) {
				return fmt.Errorf("field %q must be at least %d: %w", field, *prop.Minimum, ErrInvalidInput)
			}
		case "string":
			if v.Type != gjson.String {
				return fmt.Errorf("field %q must be a string: %w", field, ErrInvalidInput)
			}
			if strings.TrimSpace(v.String()) == "" {
				return fmt.Errorf("field %q must not be empty: %w", field, ErrInvalidInput)
			}
		}
		if len(prop.Enum) > 0 && !slices.Contains(prop.Enum, v.String()) {
			return fmt.Errorf("field %q must be one of %s: %w", field, strings.Join(prop.Enum, ", "), ErrInvalidInput)
		}
	}
	return nil
}

// selectCommit expands a hash prefix through the commits slice. Without the
// slice the hash is passed through as given.
func selectCommit(in gjson.Result, store slice.Store) (any, error) {
	hash := strings.ToLower(strings.TrimSpace(in.Get("hash").String()))
	if store == nil {
		return event.CommitSelection{Hash: hash}, nil
	}
	commits, ok := slice.Get(store, slice.Commits)
	if !ok || !commits.HasData {
		return event.CommitSelection{Hash: hash}, nil
	}

	var match string
	for _, c := range commits.Data {
		if !strings.HasPrefix(strings.ToLower(c.Hash), hash) {
			continue
		}
		if match != "" && match != c.Hash {
			return nil, fmt.Errorf("hash prefix %q is ambiguous: %w", hash, ErrInvalidInput)
		}
		match = c.Hash
	}
	if match == "" {
		return nil, fmt.Errorf("commit %s: %w", hash, ErrNotFound)
	}
	return event.CommitSelection{Hash: match}, nil
}

func selectPullRequest(in gjson.Result, store slice.Store) (any, error) {
	number := int(in.Get("number").Int())
	if store == nil {
		return nil, fmt.Errorf("pull request #%d: %w", number, ErrNotFound)
	}
	prs, ok := slice.Get(store, slice.PullRequests)
	if !ok || !prs.HasData {
		return nil, fmt.Errorf("pull request #%d: no pull requests loaded: %w", number, ErrNotFound)
	}
	i := slices.IndexFunc(prs.Data, func(pr domain.PullRequest) bool { return pr.Number == number })
	if i < 0 {
		return nil, fmt.Errorf("pull request #%d: %w", number, ErrNotFound)
	}
	return event.PullRequestSelection{PR: prs.Data[i]}, nil
}
