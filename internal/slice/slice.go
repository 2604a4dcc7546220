// Package slice defines the read side of host-owned data slices and a
// reference in-memory store.
//
// Panels never fetch data themselves. They look up a slice by name, render
// whatever it currently holds and ask the store to refresh it.
package slice

import (
	"context"
	"errors"
	"fmt"

	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/log"
)

// Name identifies a slice.
type Name string

const (
	NameCommits      Name = "commits"
	NamePullRequests Name = "pullRequests"
	NameGitConfig    Name = "gitConfig"
)

// Names returns every slice name the panels know about.
func Names() []Name {
	return []Name{NameCommits, NamePullRequests, NameGitConfig}
}

// Valid reports whether n is a known slice name.
func (n Name) Valid() bool {
	switch n {
	case NameCommits, NamePullRequests, NameGitConfig:
		return true
	}
	return false
}

// Scope is where a slice lives. The zero value matches any scope.
type Scope string

const (
	ScopeAny        Scope = ""
	ScopeWorkspace  Scope = "workspace"
	ScopeRepository Scope = "repository"
)

// ErrUnknownSlice is returned by Refresh for a slice the store does not hold.
var ErrUnknownSlice = errors.New("unknown slice")

// Raw is the untyped view of a slice as a Store holds it.
type Raw struct {
	Scope   Scope
	Name    Name
	Data    any
	HasData bool
	Loading bool
	Err     string
}

// Slice is the typed view of a slice. Data is not current while Loading is
// set; a non-empty Err means the last refresh failed and Data may be stale.
type Slice[T any] struct {
	Scope   Scope
	Name    Name
	Data    T
	HasData bool
	Loading bool
	Err     string
}

// Failed reports whether the last refresh failed.
func (s Slice[T]) Failed() bool { return s.Err != "" }

// Key binds a slice name to its data type.
type Key[T any] struct {
	name Name
}

// Name returns the slice name.
func (k Key[T]) Name() Name { return k.name }

// Typed keys for the slices the panels read.
var (
	Commits      = Key[[]domain.CommitInfo]{name: NameCommits}
	PullRequests = Key[[]domain.PullRequest]{name: NamePullRequests}
	GitConfig    = Key[domain.GitConfig]{name: NameGitConfig}
)

// Store is the slice accessor contract panels depend on.
//
// Lookup and the predicates resolve the first slice with the given name when
// no scope (or ScopeAny) is passed.
type Store interface {
	Lookup(name Name, scope ...Scope) (Raw, bool)
	HasSlice(name Name, scope ...Scope) bool
	IsSliceLoading(name Name, scope ...Scope) bool
	// Refresh reloads the matching slices. A zero scope or name matches all.
	Refresh(ctx context.Context, scope Scope, name Name) error
}

// Get reads the slice for key. ok is false when the store (which may be nil)
// does not provide it.
// Data of an unexpected type is reported as absent.
func Get[T any](s Store, key Key[T], scope ...Scope) (Slice[T], bool) {
	if s == nil {
		return Slice[T]{}, false
	}
	raw, ok := s.Lookup(key.name, scope...)
	if !ok {
		return Slice[T]{}, false
	}

	out := Slice[T]{
		Scope:   raw.Scope,
		Name:    raw.Name,
		Loading: raw.Loading,
		Err:     raw.Err,
	}
	if raw.HasData {
		data, ok := raw.Data.(T)
		if !ok {
			log.Warn(log.CatSlice, "slice data has unexpected type",
				"slice", string(key.name),
				"type", fmt.Sprintf("%T", raw.Data))
			return out, true
		}
		out.Data = data
		out.HasData = true
	}
	return out, true
}

// RefreshQuietly asks the store to refresh a slice and logs a rejection
// instead of returning it.
func RefreshQuietly(ctx context.Context, s Store, scope Scope, name Name) {
	if s == nil {
		return
	}
	if err := s.Refresh(ctx, scope, name); err != nil {
		log.Warn(log.CatSlice, "slice refresh failed",
			"slice", string(name),
			"scope", string(scope),
			"error", err.Error())
	}
}

func pickScope(scope []Scope) Scope {
	if len(scope) == 0 {
		return ScopeAny
	}
	return scope[0]
}
