package decay

import "errors"

// Contract violations. These indicate a caller bug, not a runtime condition,
// and are never silently clamped.
var (
	ErrFutureTimestamp      = errors.New("timestamp is in the future")
	ErrConfidenceOutOfRange = errors.New("base confidence outside [0,1]")
	ErrInvalidHalfLife      = errors.New("half-life must be positive")
)
