package logger_test

import (
	"bytes"
	"context"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kamau.dev/portfolio/common/logger"
	"kamau.dev/portfolio/core/config"
)

var _ = Describe("LogFields", func() {
	It("returns empty fields for a bare context", func() {
		Expect(logger.GetLogFields(context.Background())).To(Equal(logger.LogFields{}))
	})

	It("merges newer values over older ones", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			RequestID: logger.Ptr(int64(1)),
			Component: "portfolio.http",
		})
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			MessageCount: logger.Ptr(3),
			Component:    "portfolio.service.assistant",
		})

		fields := logger.GetLogFields(ctx)
		Expect(*fields.RequestID).To(Equal(int64(1)))
		Expect(*fields.MessageCount).To(Equal(3))
		Expect(fields.Component).To(Equal("portfolio.service.assistant"))
	})

	It("keeps cancellation of the parent context", func() {
		parent, cancel := context.WithCancel(context.Background())
		ctx := logger.WithLogFields(parent, logger.LogFields{Component: "x"})
		cancel()
		Expect(ctx.Err()).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Truncate", func() {
	DescribeTable("shortens long strings",
		func(input string, maxLen int, expected string) {
			Expect(logger.Truncate(input, maxLen)).To(Equal(expected))
		},
		Entry("short string unchanged", "hello", 10, "hello"),
		Entry("exact length unchanged", "hello", 5, "hello"),
		Entry("long string cut", "hello world", 5, "hello..."),
		Entry("cuts on runes, not bytes", "💪💪💪", 2, "💪💪..."),
	)
})

var _ = Describe("TraceHandler", func() {
	It("adds context fields to every record", func() {
		var buf bytes.Buffer
		log := slog.New(logger.NewTraceHandler(slog.NewTextHandler(&buf, nil)))

		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			RequestID:    logger.Ptr(int64(42)),
			MessageCount: logger.Ptr(2),
			Route:        logger.Ptr("/api/ask"),
			Component:    "portfolio.http.ask",
		})
		log.InfoContext(ctx, "hello")

		Expect(buf.String()).To(ContainSubstring("request_id=42"))
		Expect(buf.String()).To(ContainSubstring("message_count=2"))
		Expect(buf.String()).To(ContainSubstring("route=/api/ask"))
		Expect(buf.String()).To(ContainSubstring("component=portfolio.http.ask"))
	})

	It("writes JSON in production without an exporter", func() {
		var buf bytes.Buffer
		h := logger.NewHandler(config.Config{Env: "production"}, &buf)
		slog.New(h).Info("hello")
		Expect(buf.String()).To(HavePrefix("{"))
	})
})

var _ = Describe("NewHandler", func() {
	DescribeTable("chooses the level",
		func(cfg config.Config, enabled, disabled slog.Level) {
			h := logger.NewHandler(cfg, &bytes.Buffer{})
			Expect(h.Enabled(context.Background(), enabled)).To(BeTrue())
			Expect(h.Enabled(context.Background(), disabled)).To(BeFalse())
		},
		Entry("debug in development", config.Config{Env: "development"}, slog.LevelDebug, slog.LevelDebug-1),
		Entry("info in production", config.Config{Env: "production"}, slog.LevelInfo, slog.LevelDebug),
		Entry("LOG_LEVEL overrides", config.Config{Env: "development", LogLevel: "warn"}, slog.LevelWarn, slog.LevelInfo),
		Entry("unknown LOG_LEVEL falls back", config.Config{Env: "production", LogLevel: "loud"}, slog.LevelInfo, slog.LevelDebug),
	)
})
