package pattern

import (
	"context"
	"time"

	"golf-caddy-core/internal/model"
)

// UseCase is the miss-pattern store: it ingests discrete miss events and
// aggregates them into decayed, confidence-scored patterns.
type UseCase interface {
	// Record appends one miss event.
	Record(ctx context.Context, input RecordInput) (model.MissEvent, error)

	// Patterns aggregates the stored events matching the filter, live.
	Patterns(ctx context.Context, filter Filter, now time.Time) ([]model.MissPattern, error)

	// Refresh recomputes patterns for the filter and replaces the stored
	// materialized view for that filter key wholesale.
	Refresh(ctx context.Context, filter Filter, now time.Time) ([]model.MissPattern, error)

	// EventCount returns the number of stored events matching the filter,
	// regardless of age. Used by prerequisite checks.
	EventCount(ctx context.Context, filter Filter) (int, error)
}
