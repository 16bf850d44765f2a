package cache

import (
	"context"
	"strings"
	"time"

	"github.com/flexprice/storefront/internal/config"
	goCache "github.com/patrickmn/go-cache"
)

// DefaultExpiration is the default expiration time for cache entries
const DefaultExpiration = 30 * time.Minute

// DefaultCleanupInterval is how often expired items are removed from the cache
const DefaultCleanupInterval = 1 * time.Hour

// InMemoryCache implements the Cache interface using github.com/patrickmn/go-cache.
// Get and Set honour cache.enabled; the Force variants always hit the store and are
// used for data that must survive a disabled cache, like idempotent responses.
type InMemoryCache struct {
	cache   *goCache.Cache
	enabled bool
}

var _ Cache = (*InMemoryCache)(nil)

// NewInMemoryCache creates a new InMemoryCache instance from config
func NewInMemoryCache(cfg config.CacheConfig) *InMemoryCache {
	expiration := cfg.DefaultExpiration
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	cleanup := cfg.CleanupInterval
	if cleanup <= 0 {
		cleanup = DefaultCleanupInterval
	}

	return &InMemoryCache{
		cache:   goCache.New(expiration, cleanup),
		enabled: cfg.Enabled,
	}
}

// Get retrieves a value from the cache
func (c *InMemoryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	if !c.enabled {
		return nil, false
	}
	return c.ForceCacheGet(ctx, key)
}

// ForceCacheGet reads the value even when the cache is disabled
func (c *InMemoryCache) ForceCacheGet(ctx context.Context, key string) (interface{}, bool) {
	span := StartCacheSpan(ctx, "inmemory", "get", map[string]interface{}{"key": key})
	defer FinishSpan(span)

	value, found := c.cache.Get(key)
	SetSpanSuccess(span)
	if span != nil {
		span.SetData("hit", found)
	}
	return value, found
}

// ForceCacheSet writes the value even when the cache is disabled
func (c *InMemoryCache) ForceCacheSet(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	span := StartCacheSpan(ctx, "inmemory", "set", map[string]interface{}{"key": key})
	defer FinishSpan(span)

	if expiration == 0 {
		expiration = goCache.DefaultExpiration
	}
	c.cache.Set(key, value, expiration)
	SetSpanSuccess(span)
}

// Set adds a value to the cache with the specified expiration
func (c *InMemoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	if !c.enabled {
		return
	}
	c.ForceCacheSet(ctx, key, value, expiration)
}

// Delete removes a key from the cache
func (c *InMemoryCache) Delete(_ context.Context, key string) {
	c.cache.Delete(key)
}

// DeleteByPrefix removes all keys with the given prefix
func (c *InMemoryCache) DeleteByPrefix(_ context.Context, prefix string) {
	for k := range c.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			c.cache.Delete(k)
		}
	}
}

// Flush removes all items from the cache
func (c *InMemoryCache) Flush(_ context.Context) {
	c.cache.Flush()
}
