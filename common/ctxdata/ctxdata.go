package ctxdata

import "context"

// Context keys are unexported types so other packages cannot collide.
type ctxKey int

const (
	keyRequestID ctxKey = iota
)

// WithRequestID stores the request id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// RequestIDFromCtx returns the request id, or "" when none was set.
func RequestIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(keyRequestID).(string); ok {
		return v
	}
	return ""
}
