package slice

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/gitpanes/internal/log"
	"github.com/zjrosen/gitpanes/internal/pubsub"
	"github.com/zjrosen/gitpanes/internal/tracing"
)

// Loader produces the data for one slice.
type Loader func(ctx context.Context) (any, error)

// Change is published whenever a slice is registered, updated or removed.
type Change struct {
	Scope   Scope
	Name    Name
	Loading bool
	Err     string
}

type entryKey struct {
	scope Scope
	name  Name
}

type entry struct {
	raw    Raw
	loader Loader
}

// MemoryStore is an in-memory Store fed by registered loaders.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[entryKey]*entry
	order   []entryKey
	changes *pubsub.Broker[Change]
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store publishing changes on a new broker.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[entryKey]*entry),
		changes: pubsub.NewBroker[Change](),
	}
}

// Changes returns the broker slice changes are published on.
func (s *MemoryStore) Changes() *pubsub.Broker[Change] {
	return s.changes
}

// Register adds a slice with its loader. The slice starts without data;
// registering an existing slice replaces its loader and keeps its data.
func (s *MemoryStore) Register(scope Scope, name Name, loader Loader) {
	k := entryKey{scope: scope, name: name}

	s.mu.Lock()
	if e, ok := s.entries[k]; ok {
		e.loader = loader
		s.mu.Unlock()
		return
	}
	s.entries[k] = &entry{
		raw:    Raw{Scope: scope, Name: name},
		loader: loader,
	}
	s.order = append(s.order, k)
	s.mu.Unlock()

	log.Debug(log.CatSlice, "slice registered", "slice", string(name), "scope", string(scope))
	s.changes.Publish(pubsub.CreatedEvent, Change{Scope: scope, Name: name})
}

// Remove drops a slice. Panels reading it fall back to the unavailable view.
func (s *MemoryStore) Remove(scope Scope, name Name) {
	k := entryKey{scope: scope, name: name}

	s.mu.Lock()
	if _, ok := s.entries[k]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.entries, k)
	s.order = slices.DeleteFunc(s.order, func(o entryKey) bool { return o == k })
	s.mu.Unlock()

	s.changes.Publish(pubsub.DeletedEvent, Change{Scope: scope, Name: name})
}

// Set stores data for an existing slice without running its loader.
func (s *MemoryStore) Set(scope Scope, name Name, data any) error {
	k := entryKey{scope: scope, name: name}

	s.mu.Lock()
	e, ok := s.entries[k]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%s/%s: %w", scope, name, ErrUnknownSlice)
	}
	e.raw.Data = data
	e.raw.HasData = true
	e.raw.Loading = false
	e.raw.Err = ""
	s.mu.Unlock()

	s.changes.Publish(pubsub.UpdatedEvent, Change{Scope: scope, Name: name})
	return nil
}

// Lookup implements Store.
func (s *MemoryStore) Lookup(name Name, scope ...Scope) (Raw, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e := s.resolve(name, pickScope(scope))
	if e == nil {
		return Raw{}, false
	}
	return e.raw, true
}

// HasSlice implements Store.
func (s *MemoryStore) HasSlice(name Name, scope ...Scope) bool {
	_, ok := s.Lookup(name, scope...)
	return ok
}

// IsSliceLoading implements Store.
func (s *MemoryStore) IsSliceLoading(name Name, scope ...Scope) bool {
	raw, ok := s.Lookup(name, scope...)
	return ok && raw.Loading
}

// resolve must be called with s.mu held.
func (s *MemoryStore) resolve(name Name, scope Scope) *entry {
	if scope != ScopeAny {
		return s.entries[entryKey{scope: scope, name: name}]
	}
	for _, k := range s.order {
		if k.name == name {
			return s.entries[k]
		}
	}
	return nil
}

func (s *MemoryStore) matching(scope Scope, name Name) []entryKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []entryKey
	for _, k := range s.order {
		if scope != ScopeAny && k.scope != scope {
			continue
		}
		if name != "" && k.name != name {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// Refresh implements Store. Several matching slices are loaded concurrently
// and their errors joined.
func (s *MemoryStore) Refresh(ctx context.Context, scope Scope, name Name) error {
	keys := s.matching(scope, name)
	if len(keys) == 0 {
		if name == "" {
			return nil
		}
		return fmt.Errorf("%s: %w", name, ErrUnknownSlice)
	}

	ctx, span := tracing.Tracer().Start(ctx, "slice.refresh",
		trace.WithAttributes(
			attribute.String("slice.scope", string(scope)),
			attribute.String("slice.name", string(name)),
			attribute.Int("slice.count", len(keys)),
		))
	defer span.End()

	if len(keys) == 1 {
		err := s.refreshOne(ctx, keys[0])
		recordErr(span, err)
		return err
	}

	p := pool.New().WithErrors().WithContext(ctx)
	for _, k := range keys {
		p.Go(func(ctx context.Context) error {
			return s.refreshOne(ctx, k)
		})
	}
	err := p.Wait()
	recordErr(span, err)
	return err
}

func (s *MemoryStore) refreshOne(ctx context.Context, k entryKey) error {
	s.mu.Lock()
	e, ok := s.entries[k]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", k.name, ErrUnknownSlice)
	}
	loader := e.loader
	e.raw.Loading = true
	s.mu.Unlock()

	s.changes.Publish(pubsub.UpdatedEvent, Change{Scope: k.scope, Name: k.name, Loading: true})

	_, span := tracing.Tracer().Start(ctx, "slice.load",
		trace.WithAttributes(
			attribute.String("slice.scope", string(k.scope)),
			attribute.String("slice.name", string(k.name)),
		))
	var (
		data any
		err  error
	)
	if loader != nil {
		data, err = loader(ctx)
	}
	recordErr(span, err)
	span.End()

	change := Change{Scope: k.scope, Name: k.name}

	s.mu.Lock()
	// The slice may have been removed while loading.
	if e, ok := s.entries[k]; ok {
		e.raw.Loading = false
		if err != nil {
			e.raw.Err = err.Error()
		} else if loader != nil {
			e.raw.Data = data
			e.raw.HasData = true
			e.raw.Err = ""
		}
		change.Err = e.raw.Err
	}
	s.mu.Unlock()

	if err != nil {
		log.Warn(log.CatSlice, "slice load failed", "slice", string(k.name), "error", err.Error())
	} else {
		log.Debug(log.CatSlice, "slice loaded", "slice", string(k.name))
	}
	s.changes.Publish(pubsub.UpdatedEvent, change)

	if err != nil {
		return fmt.Errorf("loading %s: %w", k.name, err)
	}
	return nil
}

func recordErr(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
