package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"kamau.dev/portfolio/common/logger"
	"kamau.dev/portfolio/internal/http/dto"
	"kamau.dev/portfolio/internal/metrics"
	"kamau.dev/portfolio/internal/service"
)

// Client-facing error messages. Server-side detail only goes to the logs.
const (
	msgInvalidMessages    = "Invalid messages format"
	msgConfigurationError = "API configuration error. Please check environment variables."
	msgUpstreamError      = "External API error. Please try again later."
	msgInternalError      = "Something went wrong"
)

type AskHandler struct {
	service     service.AssistantService
	metrics     *metrics.Metrics
	traceHeader string
}

func NewAskHandler(service service.AssistantService, m *metrics.Metrics, traceHeader string) *AskHandler {
	return &AskHandler{
		service:     service,
		metrics:     m,
		traceHeader: traceHeader,
	}
}

func (h *AskHandler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid ask request", "error", err)
		h.metrics.RecordAskOutcome(string(service.KindValidation))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidMessages})
		return
	}

	messages, ok := req.ToMessages(time.Now())
	if !ok {
		h.metrics.RecordAskOutcome(string(service.KindValidation))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidMessages})
		return
	}

	if traceID := c.GetHeader(h.traceHeader); traceID != "" && !trace.SpanContextFromContext(ctx).IsValid() {
		sc := logger.StartSpanFromTraceID(ctx, traceID, "http.ask", trace.WithSpanKind(trace.SpanKindServer))
		defer sc.End()
		ctx = sc.Context()
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		MessageCount: logger.Ptr(len(messages)),
		Component:    "portfolio.http.ask",
	})

	result, err := h.service.Ask(ctx, messages)
	if err != nil {
		status, msg, outcome := statusFor(err)
		if outcome != string(service.KindValidation) {
			slog.ErrorContext(ctx, "ask failed", "error", err, "status", status)
		}
		h.metrics.RecordAskOutcome(outcome)
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}

	slog.InfoContext(ctx, "ask answered", "reply_length", len(result))
	slog.DebugContext(ctx, "assistant reply", "reply", logger.Truncate(result, 200))
	h.metrics.RecordAskOutcome("ok")
	c.JSON(http.StatusOK, dto.AskResponse{Result: result})
}

func statusFor(err error) (status int, msg string, outcome string) {
	kind, ok := service.KindOf(err)
	if !ok {
		return http.StatusInternalServerError, msgInternalError, "internal"
	}

	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest, msgInvalidMessages, string(kind)
	case service.KindConfiguration:
		return http.StatusInternalServerError, msgConfigurationError, string(kind)
	case service.KindUpstream:
		return http.StatusBadGateway, msgUpstreamError, string(kind)
	default:
		return http.StatusInternalServerError, msgInternalError, "internal"
	}
}
