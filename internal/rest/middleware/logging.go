package middleware

import (
	"time"

	"github.com/flexprice/storefront/internal/logger"
	"github.com/flexprice/storefront/internal/types"
	"github.com/gin-gonic/gin"
)

// LoggingMiddleware logs one line per request once the handler chain returns
func LoggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", types.GetRequestID(c.Request.Context()),
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Errorw("http request", fields...)
		case c.Writer.Status() >= 400:
			log.Warnw("http request", fields...)
		default:
			log.Infow("http request", fields...)
		}
	}
}
