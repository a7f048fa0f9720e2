// Package chat drives a visitor conversation with the portfolio assistant: it owns the
// transcript, relays each turn, classifies replies and reveals them over time.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"kamau.dev/portfolio/common/id"
	"kamau.dev/portfolio/common/logger"
	"kamau.dev/portfolio/internal/model"
)

const (
	DefaultRevealDuration = 1500 * time.Millisecond
	DefaultInitialDelay   = 500 * time.Millisecond

	DefaultGreeting = "Hey! I'm Newton, I build apps that handle millions in transactions 💪 What brings you here?"

	// StaticModeReply replaces the assistant's answer whenever the relay cannot be reached.
	StaticModeReply = "Hi there! 👋 I'm Newton's AI assistant, but I'm currently running in static mode. " +
		"Feel free to explore the portfolio and use the contact form to reach out directly! " +
		"You can also check out my projects and experience showcased on this site. 🚀"
)

// SuggestedQuestions are offered to visitors who do not know what to ask.
var SuggestedQuestions = []string{
	"What projects have you worked on?",
	"Tell me about your experience",
	"What technologies do you use?",
	"Show me your web expertise",
	"How can I contact you?",
	"What's your background in web development?",
	"Tell me about your crypto projects",
	"What's your biggest achievement?",
}

var (
	ErrBusy       = errors.New("a message is already in flight")
	ErrEmptyInput = errors.New("message is empty")
)

type State int

const (
	StateIdle State = iota
	StateAwaitingResponse
	StateRevealing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingResponse:
		return "awaiting_response"
	case StateRevealing:
		return "revealing"
	default:
		return "unknown"
	}
}

// Entry is a transcript message plus the panel mounted beneath it.
type Entry struct {
	model.Message
	Panel Panel
}

// Activity feeds the status indicator.
type Activity struct {
	Active    bool // visitor typing or a reply pending
	Listening bool // any turn in progress
	Pulsing   bool // reply being revealed
}

// View receives presentation events. Calls come from the goroutine running Submit.
type View interface {
	MessageAppended(e Entry)
	RevealProgress(e Entry, prefix string)
	RevealDone(e Entry)
	RevealAborted(e Entry) // cancelled mid-reveal; e stays partially shown
	PanelMounted(e Entry)
	ActivityChanged(a Activity)
}

type Options struct {
	RevealDuration time.Duration
	InitialDelay   time.Duration
	Greeting       string // opening assistant message; empty for none
}

func DefaultOptions() Options {
	return Options{
		RevealDuration: DefaultRevealDuration,
		InitialDelay:   DefaultInitialDelay,
		Greeting:       DefaultGreeting,
	}
}

type Controller struct {
	relay Relay
	view  View
	opts  Options

	mu              sync.Mutex
	state           State
	typing          bool
	transcript      []Entry
	initialQuestion string
}

func NewController(relay Relay, view View, opts Options) *Controller {
	c := &Controller{
		relay: relay,
		view:  view,
		opts:  opts,
	}
	if opts.Greeting != "" {
		c.appendLocked(model.RoleAssistant, opts.Greeting, PanelNone)
	}
	return c
}

// Start submits question once, after the configured initial delay. Later calls with the
// same question are ignored; it reports whether a submission was scheduled.
func (c *Controller) Start(ctx context.Context, question string) bool {
	question = strings.TrimSpace(question)
	if question == "" {
		return false
	}

	c.mu.Lock()
	if c.initialQuestion == question {
		c.mu.Unlock()
		return false
	}
	c.initialQuestion = question
	c.mu.Unlock()

	go func() {
		select {
		case <-time.After(c.opts.InitialDelay):
		case <-ctx.Done():
			return
		}
		if err := c.Submit(ctx, question); err != nil {
			slog.WarnContext(ctx, "initial question not submitted", "error", err)
		}
	}()
	return true
}

// Submit runs one full turn: it appends the user message, relays the transcript, appends
// the classified reply and reveals it. It returns once the controller is idle again.
//
// If ctx is cancelled while the relay call is pending, its result is dropped and nothing is
// appended. If ctx is cancelled during the reveal, the reply stays in the transcript but no
// panel is mounted.
func (c *Controller) Submit(ctx context.Context, input string) error {
	text := strings.TrimSpace(input)
	if text == "" {
		return ErrEmptyInput
	}

	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = StateAwaitingResponse
	c.typing = false
	user := c.appendLocked(model.RoleUser, text, PanelNone)
	history := c.messagesLocked()
	c.mu.Unlock()

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		MessageCount: logger.Ptr(len(history)),
		Component:    "portfolio.chat",
	})

	c.view.MessageAppended(user)
	c.notifyActivity()

	raw, err := c.relay.Ask(ctx, history)
	if ctx.Err() != nil {
		slog.DebugContext(ctx, "turn cancelled while awaiting reply")
		c.finish()
		return ctx.Err()
	}

	reply := Reply{Text: StaticModeReply, Panel: PanelNone}
	if err != nil {
		slog.WarnContext(ctx, "relay unavailable, answering in static mode", "error", err)
	} else {
		reply = Classify(text, raw)
	}

	c.mu.Lock()
	c.state = StateRevealing
	entry := c.appendLocked(model.RoleAssistant, reply.Text, reply.Panel)
	c.mu.Unlock()

	c.view.MessageAppended(entry)
	c.notifyActivity()

	if !c.reveal(ctx, entry) {
		slog.DebugContext(ctx, "reveal cancelled", "panel", entry.Panel)
		c.finish()
		return ctx.Err()
	}

	if entry.Panel != PanelNone {
		c.view.PanelMounted(entry)
	}
	c.finish()
	return nil
}

// SetTyping records whether the visitor is composing a message.
func (c *Controller) SetTyping(typing bool) {
	c.mu.Lock()
	changed := c.typing != typing
	c.typing = typing
	c.mu.Unlock()

	if changed {
		c.notifyActivity()
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Transcript returns a copy of the conversation so far.
func (c *Controller) Transcript() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.transcript))
	copy(out, c.transcript)
	return out
}

func (c *Controller) reveal(ctx context.Context, e Entry) bool {
	var last string
	for prefix := range Reveal(ctx, e.Content, c.opts.RevealDuration) {
		last = prefix
		c.view.RevealProgress(e, prefix)
	}
	if last != e.Content {
		c.view.RevealAborted(e)
		return false
	}
	c.view.RevealDone(e)
	return true
}

func (c *Controller) finish() {
	c.mu.Lock()
	c.state = StateIdle
	c.mu.Unlock()
	c.notifyActivity()
}

func (c *Controller) notifyActivity() {
	c.mu.Lock()
	a := Activity{
		Active:    c.typing || c.state == StateAwaitingResponse,
		Listening: c.state != StateIdle,
		Pulsing:   c.state == StateRevealing,
	}
	c.mu.Unlock()
	c.view.ActivityChanged(a)
}

func (c *Controller) appendLocked(role model.Role, content string, panel Panel) Entry {
	msgID := id.New()
	e := Entry{
		Message: model.Message{
			ID:        msgID,
			Role:      role,
			Content:   content,
			Timestamp: id.Time(msgID),
		},
		Panel: panel,
	}
	c.transcript = append(c.transcript, e)
	return e
}

func (c *Controller) messagesLocked() []model.Message {
	out := make([]model.Message, len(c.transcript))
	for i, e := range c.transcript {
		out[i] = e.Message
	}
	return out
}
