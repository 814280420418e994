package aladhan

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Fetcher is anything that can produce a Day for a date.
type Fetcher interface {
	Fetch(ctx context.Context, date time.Time) (*Day, error)
}

// Cache is the storage used by CachedClient. internal/redis.Cache satisfies it.
type Cache interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// CachedClient remembers successful upstream responses per date. Failures
// are never cached, and a broken cache only costs an upstream call.
type CachedClient struct {
	next  Fetcher
	cache Cache
	ttl   time.Duration
}

func NewCachedClient(next Fetcher, cache Cache, ttl time.Duration) *CachedClient {
	return &CachedClient{next: next, cache: cache, ttl: ttl}
}

func cacheKey(date time.Time) string {
	return "timings:" + date.Format("2006-01-02")
}

func (c *CachedClient) Fetch(ctx context.Context, date time.Time) (*Day, error) {
	key := cacheKey(date)

	var cached Day
	found, err := c.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("timings cache read failed")
	}
	if found && cached.Timings.Validate() == nil {
		return &cached, nil
	}

	day, err := c.next.Fetch(ctx, date)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, day, c.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("timings cache write failed")
	}
	return day, nil
}
