package logger

import (
	"context"
	"crypto/rand"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "portfolio"

// SpanContext pairs a span with the context that carries it.
type SpanContext struct {
	ctx  context.Context
	span trace.Span
}

// StartSpan creates a new span as a child of the current trace context.
// Returns a SpanContext that must be ended with End().
//
// Example:
//
//	sc := logger.StartSpan(ctx, "assistant.complete", trace.WithSpanKind(trace.SpanKindClient))
//	defer sc.End()
//	ctx = sc.Context()
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) *SpanContext {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, opts...)
	return &SpanContext{ctx: ctx, span: span}
}

// StartSpanFromTraceID starts a span inside a caller's trace. traceRef is either a bare
// 32-hex trace id or a W3C traceparent value ("00-<trace>-<span>-<flags>"). Anything that
// does not parse starts a fresh trace.
func StartSpanFromTraceID(ctx context.Context, traceRef string, name string, opts ...trace.SpanStartOption) *SpanContext {
	if parent, ok := remoteParent(traceRef); ok {
		ctx = trace.ContextWithRemoteSpanContext(ctx, parent)
		opts = append(opts, trace.WithLinks(trace.Link{SpanContext: parent}))
	}
	return StartSpan(ctx, name, opts...)
}

// remoteParent builds a sampled remote span context from traceRef. A bare trace id gets a
// random parent span id, since a span context without one is invalid and would be ignored.
func remoteParent(traceRef string) (trace.SpanContext, bool) {
	traceRef = strings.TrimSpace(traceRef)
	if traceRef == "" {
		return trace.SpanContext{}, false
	}

	traceHex, spanHex := traceRef, ""
	if parts := strings.Split(traceRef, "-"); len(parts) == 4 {
		traceHex, spanHex = parts[1], parts[2]
	}

	traceID, err := trace.TraceIDFromHex(traceHex)
	if err != nil {
		return trace.SpanContext{}, false
	}

	var spanID trace.SpanID
	if spanHex != "" {
		if spanID, err = trace.SpanIDFromHex(spanHex); err != nil {
			return trace.SpanContext{}, false
		}
	} else if _, err := rand.Read(spanID[:]); err != nil {
		return trace.SpanContext{}, false
	}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	return sc, sc.IsValid()
}

func (sc *SpanContext) Context() context.Context {
	return sc.ctx
}

// End completes the span. Subsequent calls are no-ops.
func (sc *SpanContext) End() {
	if sc.span != nil {
		sc.span.End()
	}
}

// RecordError records err on the span and marks the span failed.
func (sc *SpanContext) RecordError(err error) {
	if sc.span == nil || err == nil {
		return
	}
	sc.span.RecordError(err)
	sc.span.SetStatus(codes.Error, err.Error())
}

func (sc *SpanContext) SetAttributes(attrs ...attribute.KeyValue) {
	if sc.span != nil {
		sc.span.SetAttributes(attrs...)
	}
}

func (sc *SpanContext) Span() trace.Span {
	return sc.span
}
