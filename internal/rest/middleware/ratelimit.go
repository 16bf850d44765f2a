package middleware

import (
	"strconv"

	"github.com/flexprice/storefront/internal/config"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimitMiddleware limits requests per client IP using an in-process store.
// It is a no-op when rate limiting is disabled.
func RateLimitMiddleware(cfg *config.Configuration, log *logger.Logger) (gin.HandlerFunc, error) {
	if !cfg.RateLimit.Enabled {
		return func(c *gin.Context) { c.Next() }, nil
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit.Rate)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid rate limit format").
			WithReportableDetails(map[string]any{
				"rate": cfg.RateLimit.Rate,
			}).
			Mark(ierr.ErrValidation)
	}

	instance := limiter.New(memory.NewStore(), rate)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		lctx, err := instance.Get(c.Request.Context(), ip)
		if err != nil {
			// fail open
			log.Errorw("rate limiter lookup failed", "client_ip", ip, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			_ = c.Error(ierr.NewError("rate limit exceeded").
				WithHint("Too many requests, please retry later").
				Mark(ierr.ErrTooManyRequests))
			c.Abort()
			return
		}

		c.Next()
	}, nil
}
