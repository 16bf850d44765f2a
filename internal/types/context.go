package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxUserID    ContextKey = "ctx_user_id"
	CtxCountry   ContextKey = "ctx_country"

	HeaderRequestID      = "X-Request-ID"
	HeaderCountry        = "X-Country"
	HeaderIdempotencyKey = "Idempotency-Key"
)

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(CtxUserID).(string); ok {
		return userID
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// GetCountry returns the country hint attached to the request, already normalized
func GetCountry(ctx context.Context) string {
	if country, ok := ctx.Value(CtxCountry).(string); ok {
		return country
	}
	return CountryUnknown
}
