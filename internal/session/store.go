package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store hands out sessions keyed by caller-supplied ID. Entries expire after
// the configured idle TTL, and the store itself is capped so a flood of
// session IDs cannot grow memory without bound.
type Store struct {
	sessions *expirable.LRU[string, *Session]
	capacity int
}

// StoreConfig bounds the store. Zero values fall back to defaults.
type StoreConfig struct {
	Capacity int           // turns kept per session
	TTL      time.Duration // idle lifetime per session
	MaxCount int           // live sessions kept in memory
}

// NewStore creates a session store.
func NewStore(cfg StoreConfig) *Store {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = DefaultMaxCount
	}

	return &Store{
		sessions: expirable.NewLRU[string, *Session](cfg.MaxCount, nil, cfg.TTL),
		capacity: cfg.Capacity,
	}
}

// GetOrCreate returns the live session for id, creating one if absent or
// expired. Safe for concurrent use.
func (st *Store) GetOrCreate(id string) *Session {
	if s, ok := st.sessions.Get(id); ok {
		return s
	}
	s := newSession(id, st.capacity)
	// A concurrent create can race us here; last write wins, which only
	// costs the loser its empty session.
	st.sessions.Add(id, s)
	return s
}

// Get returns the session for id if it is still live.
func (st *Store) Get(id string) (*Session, bool) {
	return st.sessions.Get(id)
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	return st.sessions.Len()
}
