package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"

	"kamau.dev/portfolio/core/config"
)

func Setup(cfg config.Config) {
	slog.SetDefault(slog.New(NewHandler(cfg, os.Stdout)))
}

// NewHandler picks the slog handler for the environment: OTel bridge in production when an
// exporter is configured, JSON in production otherwise, text everywhere else.
func NewHandler(cfg config.Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: level(cfg)}

	switch {
	case cfg.IsProduction() && cfg.OTel.Enabled():
		// The bridge exports span context itself; only the request fields are added here.
		bridge := otelslog.NewHandler(
			cfg.OTel.ServiceName,
			otelslog.WithLoggerProvider(global.GetLoggerProvider()),
		)
		return &TraceHandler{Handler: bridge}
	case cfg.IsProduction():
		return NewTraceHandler(slog.NewJSONHandler(w, opts))
	default:
		return NewTraceHandler(slog.NewTextHandler(w, opts))
	}
}

// level honours LOG_LEVEL, else debug in development and info elsewhere.
func level(cfg config.Config) slog.Level {
	var l slog.Level
	if cfg.LogLevel != "" && l.UnmarshalText([]byte(cfg.LogLevel)) == nil {
		return l
	}
	if cfg.IsDevelopment() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// TraceHandler adds span ids and the context's LogFields to every record.
type TraceHandler struct {
	slog.Handler
	spanIDs bool
}

func NewTraceHandler(h slog.Handler) *TraceHandler {
	return &TraceHandler{Handler: h, spanIDs: true}
}

func (h *TraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if span := trace.SpanFromContext(ctx); h.spanIDs && span.SpanContext().IsValid() {
		sc := span.SpanContext()
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	fields := GetLogFields(ctx)
	if fields.RequestID != nil {
		r.AddAttrs(slog.Int64("request_id", *fields.RequestID))
	}
	if fields.MessageCount != nil {
		r.AddAttrs(slog.Int("message_count", *fields.MessageCount))
	}
	if fields.Route != nil {
		r.AddAttrs(slog.String("route", *fields.Route))
	}
	if fields.Component != "" {
		r.AddAttrs(slog.String("component", fields.Component))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *TraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithAttrs(attrs), spanIDs: h.spanIDs}
}

func (h *TraceHandler) WithGroup(name string) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithGroup(name), spanIDs: h.spanIDs}
}
