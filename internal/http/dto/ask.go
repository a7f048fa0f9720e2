package dto

import (
	"time"

	"kamau.dev/portfolio/internal/model"
)

// AskRequest is the body of POST /api/ask. Messages must be a JSON array; anything else
// fails binding.
type AskRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required"`
}

// ChatMessage is a transcript entry on the wire. Content is a pointer so an explicit null
// can be told apart from an empty string.
type ChatMessage struct {
	Role    model.Role `json:"role"`
	Content *string    `json:"content"`
}

type AskResponse struct {
	Result string `json:"result"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ToMessages converts the wire transcript. ok is false when any content is null.
func (r AskRequest) ToMessages(now time.Time) (messages []model.Message, ok bool) {
	messages = make([]model.Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		if m.Content == nil {
			return nil, false
		}
		messages = append(messages, model.Message{
			Role:      m.Role,
			Content:   *m.Content,
			Timestamp: now,
		})
	}
	return messages, true
}

// FromMessages builds the wire transcript, dropping ids and timestamps.
func FromMessages(messages []model.Message) AskRequest {
	req := AskRequest{Messages: make([]ChatMessage, 0, len(messages))}
	for _, m := range messages {
		content := m.Content
		req.Messages = append(req.Messages, ChatMessage{Role: m.Role, Content: &content})
	}
	return req
}
