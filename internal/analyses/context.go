package analyses

import "context"

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID tags ctx so service log lines can be joined with the access log.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// logFields returns fields with the request ID from ctx added.
func logFields(ctx context.Context, fields map[string]any) map[string]any {
	if fields == nil {
		fields = make(map[string]any, 1)
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		fields["request_id"] = id
	}
	return fields
}
