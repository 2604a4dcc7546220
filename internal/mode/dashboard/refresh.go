package dashboard

import (
	"context"
	"time"

	"github.com/zjrosen/gitpanes/internal/fixtures"
	"github.com/zjrosen/gitpanes/internal/git/application"
	"github.com/zjrosen/gitpanes/internal/log"
	"github.com/zjrosen/gitpanes/internal/slice"
)

// AutoRefresh reloads src whenever its file changes and refreshes every
// slice so mounted panels pick up the new data. cache may be nil. It blocks
// until ctx is done and returns immediately for the built-in demo data.
func AutoRefresh(ctx context.Context, src *fixtures.Source, cache *application.CachingLoader, store slice.Store, debounce time.Duration) error {
	if src.Path() == "" {
		return nil
	}
	return fixtures.Watch(ctx, src.Path(), debounce, func() {
		if err := src.Reload(); err != nil {
			log.Warn(log.CatHost, "fixtures reload failed", "path", src.Path(), "error", err.Error())
			return
		}
		if cache != nil {
			cache.Purge()
		}
		slice.RefreshQuietly(ctx, store, slice.ScopeAny, "")
	})
}
