package profile

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/IdleRates_Go/internal/domain"
	"github.com/osse101/IdleRates_Go/internal/logger"
	"github.com/osse101/IdleRates_Go/internal/metrics"
)

// cachedProfileEntry wraps a profile with version metadata for cache invalidation
type cachedProfileEntry struct {
	Version  string                `json:"version"`
	Profile  *domain.PlayerProfile `json:"profile"`
	CachedAt time.Time             `json:"cached_at"`
}

// CachedSource memoizes another Source with time-based expiration.
// The LRU is internally synchronized.
type CachedSource struct {
	source Source
	lru    *expirable.LRU[string, *cachedProfileEntry]
}

// NewCachedSource wraps source with an LRU of the given size and TTL
func NewCachedSource(source Source, size int, ttl time.Duration) *CachedSource {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSource{
		source: source,
		lru:    expirable.NewLRU[string, *cachedProfileEntry](size, nil, ttl),
	}
}

// FetchPlayer returns a cached profile when present, otherwise fetches and caches it.
// Errors are never cached.
func (c *CachedSource) FetchPlayer(ctx context.Context, name string) (*domain.PlayerProfile, error) {
	key := cacheKey(name)
	if entry, found := c.lru.Get(key); found {
		if entry.Version == CacheSchemaVersion {
			metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheProfiles, metrics.CacheHit).Inc()
			logger.FromContext(ctx).Debug(LogMsgCacheHit, "username", name)
			return entry.Profile, nil
		}
		c.lru.Remove(key)
	}
	metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheProfiles, metrics.CacheMiss).Inc()

	profile, err := c.source.FetchPlayer(ctx, name)
	if err != nil {
		return nil, err
	}

	c.lru.Add(key, &cachedProfileEntry{
		Version:  CacheSchemaVersion,
		Profile:  profile,
		CachedAt: time.Now(),
	})
	return profile, nil
}

// Invalidate removes a player from the cache
func (c *CachedSource) Invalidate(name string) {
	c.lru.Remove(cacheKey(name))
}

// Len returns the number of cached players
func (c *CachedSource) Len() int {
	return c.lru.Len()
}

func cacheKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
