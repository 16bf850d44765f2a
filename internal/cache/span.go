package cache

import (
	"context"

	"github.com/getsentry/sentry-go"
)

// StartCacheSpan starts a sentry span for a cache operation.
// Returns nil when the context carries no sentry hub, e.g. outside a request.
func StartCacheSpan(ctx context.Context, backend, operation string, params map[string]interface{}) *sentry.Span {
	if ctx == nil || sentry.GetHubFromContext(ctx) == nil {
		return nil
	}

	name := "cache." + backend + "." + operation
	span := sentry.StartSpan(ctx, name)
	span.Description = name
	span.Op = "cache"
	span.SetData("cache.backend", backend)
	for k, v := range params {
		span.SetData(k, v)
	}
	return span
}

// FinishSpan finishes a span, tolerating nil
func FinishSpan(span *sentry.Span) {
	if span != nil {
		span.Finish()
	}
}

// SetSpanSuccess marks a span as successful
func SetSpanSuccess(span *sentry.Span) {
	if span != nil {
		span.Status = sentry.SpanStatusOK
	}
}
