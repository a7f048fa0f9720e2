package llm

import (
	"context"
	"errors"
	"fmt"
)

// Role constants for chat completion messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrMalformedResponse is returned when the API answers 2xx but the body has no usable choice.
var ErrMalformedResponse = errors.New("completion response is malformed")

// Config holds completion client configuration.
type Config struct {
	APIKey  string // Required: bearer credential for the completion API
	BaseURL string // Optional: OpenAI-compatible endpoint (e.g., Groq)
	Model   string // Model name (e.g., "llama-3.1-8b-instant")
}

// Client performs one-shot chat completions.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
	Model() string
}

// CompletionRequest carries the full message history, system prompt included.
type CompletionRequest struct {
	Messages    []Message
	MaxTokens   int      // 0 = provider default
	Temperature *float64 // nil = model default
}

// Message is a role/content pair as sent on the wire.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Completion is the first choice of a successful completion.
type Completion struct {
	Content          string
	FinishReason     string
	PromptTokens     int
	CompletionTokens int
}

// APIError is a non-2xx answer from the completion API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("completion API request failed (%d): %s", e.StatusCode, e.Body)
}

// TransportError wraps failures that happened before any HTTP response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("completion API unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is a network-level failure.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Temp returns a pointer to t, for CompletionRequest.Temperature.
func Temp(t float64) *float64 {
	return &t
}
