package session

import "time"

const (
	// DefaultCapacity bounds the per-session turn window. Older turns are
	// dropped, never summarized.
	DefaultCapacity = 10

	// DefaultTTL is the idle lifetime of a session entry.
	DefaultTTL = 30 * time.Minute

	// DefaultMaxCount bounds the number of live sessions held in memory.
	DefaultMaxCount = 1024
)
