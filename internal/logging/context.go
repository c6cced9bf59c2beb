package logging

import (
	"context"
	"log/slog"

	"mediagrab/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldLink is the standardized structured logging key for the link being processed.
	FieldLink = "link"
	// FieldOperation is the standardized structured logging key for operation names.
	FieldOperation = "operation"
	// FieldSessionID identifies one interactive session across log lines.
	FieldSessionID = "session_id"
	// FieldEventType categorizes warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint carries the next step a user should take.
	FieldErrorHint = "error_hint"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if sid, ok := services.SessionIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSessionID, sid))
	}
	if op, ok := services.OperationFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldOperation, op))
	}
	if link, ok := services.LinkFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldLink, link))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
