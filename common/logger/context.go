package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Handlers enrich the request context once and every log statement below them picks the
// fields up through TraceHandler.
type LogFields struct {
	RequestID    *int64  // Snowflake id assigned by the RequestID middleware
	MessageCount *int    // Transcript length of the ask request being served
	Route        *string // Matched gin route (e.g., "/api/ask")
	Component    string  // Component name (OTel semantic convention style, e.g., "portfolio.service.assistant")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.RequestID != nil {
		result.RequestID = new.RequestID
	}
	if new.MessageCount != nil {
		result.MessageCount = new.MessageCount
	}
	if new.Route != nil {
		result.Route = new.Route
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{RequestID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate shortens s to at most maxLen runes, appending "..." if truncated.
// Assistant replies carry emoji, so cutting on bytes would emit invalid UTF-8 into logs.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
