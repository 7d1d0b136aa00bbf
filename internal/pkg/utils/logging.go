package utils

import (
	"context"

	"family-health-service/internal/pkg/constvars"
)

// GetRequestID returns the request id stored by the request id middleware,
// or an empty string for background work.
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
