package middleware

import (
	"net/http"
	"strings"

	"github.com/flexprice/storefront/internal/types"
	"github.com/gin-gonic/gin"
)

var allowedHeaders = strings.Join([]string{
	"Content-Type",
	"Authorization",
	types.HeaderRequestID,
	types.HeaderCountry,
	types.HeaderIdempotencyKey,
}, ", ")

// CORSMiddleware handles CORS headers
func CORSMiddleware(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
	c.Writer.Header().Set("Access-Control-Expose-Headers", types.HeaderRequestID)
	c.Writer.Header().Set("Access-Control-Max-Age", "86400")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusOK)
		return
	}
	c.Next()
}
