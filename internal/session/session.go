// Package session keeps short-lived, bounded conversation state. A session
// holds the last few turns plus round markers; nothing here is durable.
package session

import (
	"sync"
	"time"
)

// Session is a bounded FIFO window of conversation turns. Safe for
// concurrent use.
type Session struct {
	mu sync.Mutex

	id       string
	capacity int
	turns    []Turn

	activeRound *string
	currentHole *int
}

func newSession(id string, capacity int) *Session {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Session{
		id:       id,
		capacity: capacity,
		turns:    make([]Turn, 0, capacity),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Append records a turn, evicting the oldest when the window is full.
func (s *Session) Append(role, content string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.turns) == s.capacity {
		copy(s.turns, s.turns[1:])
		s.turns = s.turns[:s.capacity-1]
	}
	s.turns = append(s.turns, Turn{Role: role, Content: content, Timestamp: at})
}

// SetRound marks the active round. Pass empty to clear.
func (s *Session) SetRound(roundID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if roundID == "" {
		s.activeRound = nil
		s.currentHole = nil
		return
	}
	s.activeRound = &roundID
}

// SetHole records the hole the player is on.
func (s *Session) SetHole(hole int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentHole = &hole
}

// Snapshot copies the current state out under the lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:    s.id,
		Turns: make([]Turn, len(s.turns)),
	}
	copy(snap.Turns, s.turns)

	if s.activeRound != nil {
		round := *s.activeRound
		snap.ActiveRound = &round
	}
	if s.currentHole != nil {
		hole := *s.currentHole
		snap.CurrentHole = &hole
	}
	return snap
}
