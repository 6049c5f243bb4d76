package usecase

import (
	"context"
	"fmt"
	"time"

	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/pattern"
)

// Patterns aggregates the stored events matching the filter, live. The
// filter's club/pressure dimensions are stamped onto the resulting patterns.
func (uc *implUseCase) Patterns(ctx context.Context, filter pattern.Filter, now time.Time) ([]model.MissPattern, error) {
	events, err := uc.events.ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	patterns, err := Aggregate(events, now, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	stampFilter(patterns, filter)
	return patterns, nil
}

// Refresh recomputes and replaces the materialized view for the filter key.
// Stored patterns are a materialized view, not an edit log: the replace is
// wholesale.
func (uc *implUseCase) Refresh(ctx context.Context, filter pattern.Filter, now time.Time) ([]model.MissPattern, error) {
	patterns, err := uc.Patterns(ctx, filter, now)
	if err != nil {
		return nil, err
	}

	if err := uc.patternRepo.ReplacePatterns(ctx, filter.Key(), patterns); err != nil {
		return nil, fmt.Errorf("replace patterns: %w", err)
	}

	uc.l.Infof(ctx, "Refreshed %d pattern(s) for filter %s", len(patterns), filter.Key())
	return patterns, nil
}

// EventCount returns the number of stored events matching the filter.
func (uc *implUseCase) EventCount(ctx context.Context, filter pattern.Filter) (int, error) {
	return uc.events.CountEvents(ctx, filter)
}

func stampFilter(patterns []model.MissPattern, filter pattern.Filter) {
	for i := range patterns {
		patterns[i].Club = filter.ClubID
		if filter.PressureOnly {
			patterns[i].Pressure = &model.PressureContext{IsInferred: true}
		}
	}
}
