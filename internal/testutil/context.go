package testutil

import (
	"context"

	"github.com/flexprice/storefront/internal/types"
)

// SetupContext returns a context carrying a fresh request ID
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUID())
	return ctx
}

// WithCountry attaches a country hint the way the request middleware does
func WithCountry(ctx context.Context, country string) context.Context {
	return context.WithValue(ctx, types.CtxCountry, types.NormalizeCountry(country))
}
