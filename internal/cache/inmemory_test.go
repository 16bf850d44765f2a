package cache

import (
	"context"
	"testing"
	"time"

	"github.com/flexprice/storefront/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryCache_EnabledRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache(config.CacheConfig{Enabled: true, DefaultExpiration: time.Minute})

	key := GenerateKey(PrefixProduct, "edge-router", "EUR")
	assert.Equal(t, "product:v1::edge-router:EUR", key)

	c.Set(ctx, key, 12900, 0)
	value, found := c.Get(ctx, key)
	assert.True(t, found)
	assert.Equal(t, 12900, value)

	c.DeleteByPrefix(ctx, PrefixProduct)
	_, found = c.Get(ctx, key)
	assert.False(t, found)
}

func TestInMemoryCache_DisabledStillServesForcedEntries(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache(config.CacheConfig{Enabled: false})

	c.Set(ctx, "plain", "value", time.Minute)
	_, found := c.Get(ctx, "plain")
	assert.False(t, found)

	c.ForceCacheSet(ctx, "forced", "value", time.Minute)
	value, found := c.ForceCacheGet(ctx, "forced")
	assert.True(t, found)
	assert.Equal(t, "value", value)

	c.Flush(ctx)
	_, found = c.ForceCacheGet(ctx, "forced")
	assert.False(t, found)
}
