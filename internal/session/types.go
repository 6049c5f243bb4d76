package session

import "time"

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one exchange half in a conversation.
type Turn struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// Snapshot is an immutable copy of session state, safe to read after the
// session has moved on.
type Snapshot struct {
	ID          string
	Turns       []Turn
	ActiveRound *string
	CurrentHole *int
}
