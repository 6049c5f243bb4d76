// Package inmem provides in-memory event and pattern repositories. Suitable
// for single-process deployments and tests; the interfaces allow a durable
// store to be dropped in without touching the aggregation logic.
package inmem

import (
	"context"
	"sync"

	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/pattern"
)

// Repository implements both EventRepository and PatternRepository.
type Repository struct {
	mu       sync.RWMutex
	events   []model.MissEvent
	patterns map[string][]model.MissPattern
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{
		patterns: make(map[string][]model.MissPattern),
	}
}

// AppendEvent stores one event.
func (r *Repository) AppendEvent(_ context.Context, event model.MissEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// ListEvents returns all events matching the filter, in insertion order.
func (r *Repository) ListEvents(_ context.Context, filter pattern.Filter) ([]model.MissEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.MissEvent, 0, len(r.events))
	for _, e := range r.events {
		if matches(e, filter) {
			out = append(out, e)
		}
	}
	return out, nil
}

// CountEvents returns the number of events matching the filter.
func (r *Repository) CountEvents(_ context.Context, filter pattern.Filter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.events {
		if matches(e, filter) {
			count++
		}
	}
	return count, nil
}

// ReplacePatterns atomically replaces all stored patterns for the key.
func (r *Repository) ReplacePatterns(_ context.Context, filterKey string, patterns []model.MissPattern) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]model.MissPattern, len(patterns))
	copy(stored, patterns)
	r.patterns[filterKey] = stored
	return nil
}

// ListPatterns returns the stored patterns for the key.
func (r *Repository) ListPatterns(_ context.Context, filterKey string) ([]model.MissPattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.patterns[filterKey]
	out := make([]model.MissPattern, len(stored))
	copy(out, stored)
	return out, nil
}

func matches(e model.MissEvent, filter pattern.Filter) bool {
	if filter.ClubID != "" && e.ClubID != filter.ClubID {
		return false
	}
	if filter.PressureOnly && !e.Pressure.IsUserTagged && !e.Pressure.IsInferred {
		return false
	}
	return true
}
