package model

import "time"

// Role identifies who authored a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the roles a visitor transcript may contain.
// "system" is deliberately absent: the persona prompt is injected server-side only.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is a single conversational turn. Timestamp is display-only and never leaves the
// process that created it.
type Message struct {
	ID        int64
	Role      Role
	Content   string
	Timestamp time.Time
}
