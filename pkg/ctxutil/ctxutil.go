package ctxutil

import "context"

type ctxKey string

const (
	clientIDKey  ctxKey = "client_id"
	clientIPKey  ctxKey = "client_ip"
	requestIDKey ctxKey = "request_id"
)

// UnknownClient identifies callers that sent no proxy headers.
const UnknownClient = "unknown"

// WithClientID stores the rate-limit identity of the caller in the context.
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDKey, id)
}

// ClientIDFromCtx extracts the caller identity from the context.
// Returns UnknownClient if the value is missing or empty.
func ClientIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey).(string)
	if id == "" {
		return UnknownClient
	}
	return id
}

// WithClientIP stores the caller address recorded with a lead.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromCtx extracts the caller address, falling back to the client id.
func ClientIPFromCtx(ctx context.Context) string {
	if ip, _ := ctx.Value(clientIPKey).(string); ip != "" {
		return ip
	}
	return ClientIDFromCtx(ctx)
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
