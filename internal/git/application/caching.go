package application

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/log"
)

// DefaultDetailTTL is how long a commit detail stays cached when no TTL is
// configured.
const DefaultDetailTTL = 10 * time.Minute

// CachingLoader memoizes commit details by hash. Commits are immutable, so a
// cached detail only goes stale when the underlying dataset is replaced;
// Purge handles that. Everything else passes through.
type CachingLoader struct {
	Loader
	details *cache.Cache
}

var _ Loader = (*CachingLoader)(nil)

// NewCachingLoader wraps next. A non-positive ttl uses DefaultDetailTTL.
func NewCachingLoader(next Loader, ttl time.Duration) *CachingLoader {
	if ttl <= 0 {
		ttl = DefaultDetailTTL
	}
	return &CachingLoader{
		Loader:  next,
		details: cache.New(ttl, 2*ttl),
	}
}

// CommitDetail implements Loader. Failures are not cached.
func (c *CachingLoader) CommitDetail(ctx context.Context, hash string) (domain.CommitDetail, error) {
	if v, ok := c.details.Get(hash); ok {
		log.Debug(log.CatHost, "commit detail cache hit", "hash", hash)
		return v.(domain.CommitDetail), nil
	}
	d, err := c.Loader.CommitDetail(ctx, hash)
	if err != nil {
		return domain.CommitDetail{}, err
	}
	c.details.SetDefault(hash, d)
	return d, nil
}

// Cached returns the number of cached details.
func (c *CachingLoader) Cached() int { return c.details.ItemCount() }

// Purge drops every cached detail.
func (c *CachingLoader) Purge() { c.details.Flush() }
