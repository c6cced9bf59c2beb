package services

import "context"

type contextKey string

const (
	linkKey      contextKey = "link"
	operationKey contextKey = "operation"
	sessionKey   contextKey = "session_id"
)

// WithLink annotates context with the link currently being processed.
func WithLink(ctx context.Context, link string) context.Context {
	if link == "" {
		return ctx
	}
	return context.WithValue(ctx, linkKey, link)
}

// LinkFromContext returns the link if present.
func LinkFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(linkKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithOperation annotates context with the operation name.
func WithOperation(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, operationKey, name)
}

// OperationFromContext returns the operation name if present.
func OperationFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(operationKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithSessionID annotates context with the interactive session identifier.
func WithSessionID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey, id)
}

// SessionIDFromContext returns the session identifier if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(sessionKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}
