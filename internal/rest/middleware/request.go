package middleware

import (
	"context"

	"github.com/flexprice/storefront/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)

	// The country header is a hint from the edge (geo-ip); it never overrides a stored profile.
	if country := types.NormalizeCountry(c.GetHeader(types.HeaderCountry)); country != types.CountryUnknown {
		ctx = context.WithValue(ctx, types.CtxCountry, country)
	}

	c.Request = c.Request.WithContext(ctx)
	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}
