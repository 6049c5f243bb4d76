package repository

import (
	"context"

	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/pattern"
)

// EventRepository persists miss events. Append-only.
type EventRepository interface {
	// AppendEvent stores one event.
	AppendEvent(ctx context.Context, event model.MissEvent) error

	// ListEvents returns all events matching the filter, oldest first.
	ListEvents(ctx context.Context, filter pattern.Filter) ([]model.MissEvent, error)

	// CountEvents returns the number of events matching the filter.
	CountEvents(ctx context.Context, filter pattern.Filter) (int, error)
}

// PatternRepository persists the materialized pattern view per filter key.
type PatternRepository interface {
	// ReplacePatterns atomically replaces all stored patterns for the key.
	ReplacePatterns(ctx context.Context, filterKey string, patterns []model.MissPattern) error

	// ListPatterns returns the stored patterns for the key, in stored order.
	ListPatterns(ctx context.Context, filterKey string) ([]model.MissPattern, error)
}
