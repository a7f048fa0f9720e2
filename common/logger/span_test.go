package logger_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"kamau.dev/portfolio/common/logger"
)

var _ = Describe("Spans", func() {
	const traceHex = "4bf92f3577b34da6a3ce929d0e0e4736"

	var recorder *tracetest.SpanRecorder

	BeforeEach(func() {
		previous := otel.GetTracerProvider()
		recorder = tracetest.NewSpanRecorder()
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
		DeferCleanup(func() { otel.SetTracerProvider(previous) })
	})

	ended := func() []sdktrace.ReadOnlySpan {
		return recorder.Ended()
	}

	It("joins the caller's trace from a bare trace id", func() {
		sc := logger.StartSpanFromTraceID(context.Background(), traceHex, "http.ask")
		sc.End()

		Expect(ended()).To(HaveLen(1))
		Expect(ended()[0].SpanContext().TraceID().String()).To(Equal(traceHex))
		Expect(ended()[0].Parent().IsRemote()).To(BeTrue())
	})

	It("keeps the parent span of a traceparent header", func() {
		sc := logger.StartSpanFromTraceID(context.Background(),
			"00-"+traceHex+"-00f067aa0ba902b7-01", "http.ask")
		sc.End()

		span := ended()[0]
		Expect(span.SpanContext().TraceID().String()).To(Equal(traceHex))
		Expect(span.Parent().SpanID().String()).To(Equal("00f067aa0ba902b7"))
	})

	It("starts a fresh trace for an unparsable id", func() {
		sc := logger.StartSpanFromTraceID(context.Background(), "not-a-trace", "http.ask")
		sc.End()

		span := ended()[0]
		Expect(span.SpanContext().TraceID().String()).NotTo(Equal(traceHex))
		Expect(span.Parent().IsValid()).To(BeFalse())
	})

	It("marks the span failed on RecordError", func() {
		sc := logger.StartSpan(context.Background(), "assistant.complete")
		sc.RecordError(errors.New("upstream 503"))
		sc.End()

		Expect(ended()[0].Status().Code).To(Equal(codes.Error))
		Expect(ended()[0].Events()).To(HaveLen(1))
	})
})
