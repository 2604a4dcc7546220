package application

import (
	"context"

	"github.com/zjrosen/gitpanes/internal/slice"
)

// RegisterSlices binds the three panel slices in scope to l.
func RegisterSlices(store *slice.MemoryStore, scope slice.Scope, l Loader) {
	store.Register(scope, slice.NameCommits, func(ctx context.Context) (any, error) {
		return l.Commits(ctx)
	})
	store.Register(scope, slice.NamePullRequests, func(ctx context.Context) (any, error) {
		return l.PullRequests(ctx)
	})
	store.Register(scope, slice.NameGitConfig, func(ctx context.Context) (any, error) {
		return l.GitConfig(ctx)
	})
}
