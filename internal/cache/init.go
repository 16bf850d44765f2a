package cache

import (
	"github.com/flexprice/storefront/internal/config"
	"github.com/flexprice/storefront/internal/logger"
)

// Initialize builds the cache used by the services
func Initialize(cfg *config.Configuration, log *logger.Logger) *InMemoryCache {
	log.Infow("initializing cache system",
		"enabled", cfg.Cache.Enabled,
		"default_expiration", cfg.Cache.DefaultExpiration,
	)
	return NewInMemoryCache(cfg.Cache)
}
