package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"kamau.dev/portfolio/common/llm"
	"kamau.dev/portfolio/common/logger"
	"kamau.dev/portfolio/internal/metrics"
	"kamau.dev/portfolio/internal/model"
	"kamau.dev/portfolio/internal/persona"
)

// FallbackReply is returned instead of an error when the completion call fails in a way
// that is neither a configuration nor an upstream problem.
const FallbackReply = "Something went wrong fetching my response. Try again?"

type AssistantService interface {
	// Ask sends the persona prompt followed by transcript and returns the reply text.
	Ask(ctx context.Context, transcript []model.Message) (string, error)
}

type assistantService struct {
	client  llm.Client
	metrics *metrics.Metrics
}

// NewAssistantService builds the persona completion service. A nil client means the
// credential was not configured; every Ask then fails with KindConfiguration.
func NewAssistantService(client llm.Client, m *metrics.Metrics) AssistantService {
	return &assistantService{
		client:  client,
		metrics: m,
	}
}

func (s *assistantService) Ask(ctx context.Context, transcript []model.Message) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "portfolio.service.assistant"})

	// Without a credential nothing else matters, not even a malformed transcript.
	if s.client == nil {
		slog.ErrorContext(ctx, "completion credential missing, cannot answer")
		return "", &Error{Kind: KindConfiguration, Err: ErrNotConfigured}
	}

	if err := validateTranscript(transcript); err != nil {
		return "", &Error{Kind: KindValidation, Err: err}
	}

	sc := logger.StartSpan(ctx, "assistant.complete",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("llm.model", s.client.Model()),
			attribute.Int("llm.message_count", len(transcript)+1),
		))
	defer sc.End()
	ctx = sc.Context()

	reply, err := s.complete(ctx, transcript)
	if err != nil {
		sc.RecordError(err)
		return "", err
	}
	sc.SetAttributes(attribute.Int("llm.reply_length", len(reply)))
	return reply, nil
}

func (s *assistantService) complete(ctx context.Context, transcript []model.Message) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "completion call panicked, answering with fallback", "panic", fmt.Sprint(r))
			s.metrics.RecordFallback()
			reply, err = FallbackReply, nil
		}
	}()

	start := time.Now()
	completion, err := s.client.Complete(ctx, llm.CompletionRequest{
		Messages:    withPersona(transcript),
		Temperature: llm.Temp(persona.Temperature),
	})
	if err == nil {
		s.metrics.RecordCompletion(time.Since(start), completion.PromptTokens, completion.CompletionTokens)
		return completion.Content, nil
	}

	var apiErr *llm.APIError
	switch {
	case errors.As(err, &apiErr):
		slog.ErrorContext(ctx, "completion API returned an error",
			"status_code", apiErr.StatusCode,
			"body", logger.Truncate(apiErr.Body, 500))
		return "", &Error{Kind: KindUpstream, StatusCode: apiErr.StatusCode, Body: apiErr.Body, Err: err}
	case errors.Is(err, llm.ErrMalformedResponse):
		slog.ErrorContext(ctx, "completion API returned incomplete data", "error", err)
		return "", &Error{Kind: KindUpstream, Err: err}
	case llm.IsTransportError(err):
		slog.ErrorContext(ctx, "completion API unreachable", "error", err)
		return "", &Error{Kind: KindUpstream, Err: err}
	default:
		slog.ErrorContext(ctx, "completion call failed, answering with fallback", "error", err)
		s.metrics.RecordFallback()
		return FallbackReply, nil
	}
}

func validateTranscript(transcript []model.Message) error {
	if len(transcript) == 0 {
		return ErrEmptyTranscript
	}
	for i, msg := range transcript {
		if !msg.Role.Valid() {
			return fmt.Errorf("message %d: %w", i, ErrInvalidRole)
		}
	}
	return nil
}

// withPersona builds the outbound message list; timestamps and ids never leave the process.
func withPersona(transcript []model.Message) []llm.Message {
	messages := make([]llm.Message, 0, len(transcript)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: persona.Prompt})
	for _, msg := range transcript {
		messages = append(messages, llm.Message{Role: string(msg.Role), Content: msg.Content})
	}
	return messages
}
