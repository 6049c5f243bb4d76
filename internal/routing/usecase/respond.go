package usecase

import (
	"context"
	"fmt"

	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/pattern"
	"golf-caddy-core/internal/routing"
)

// respondInline answers the no-navigation intents in place.
func (uc implUseCase) respondInline(ctx context.Context, intent model.Intent, input routing.Input) (string, error) {
	switch intent.Type {
	case model.IntentHelp:
		return MsgHelp, nil
	case model.IntentMissPatternQuery:
		return uc.missPatternAnswer(ctx, intent, input)
	default:
		return "", fmt.Errorf("%w: no inline response for %s", routing.ErrNoDestination, intent.Type)
	}
}

// missPatternAnswer summarizes the strongest current pattern, scoped to the
// club the user asked about when they named one.
func (uc implUseCase) missPatternAnswer(ctx context.Context, intent model.Intent, input routing.Input) (string, error) {
	filter := pattern.Filter{}
	if intent.Entities.Club != nil {
		filter.ClubID = *intent.Entities.Club
	}

	patterns, err := uc.patterns.Patterns(ctx, filter, input.Now)
	if err != nil {
		return "", fmt.Errorf("pattern query: %w", err)
	}
	if len(patterns) == 0 {
		return MsgNoMissPattern, nil
	}

	top := patterns[0]
	if top.Club != "" {
		return fmt.Sprintf("Lately your %s tends to miss %s (%d recent shots, %.0f%% confidence).",
			top.Club, top.Direction, top.Frequency, top.Confidence*100), nil
	}
	return fmt.Sprintf("Lately you tend to miss %s (%d recent shots, %.0f%% confidence).",
		top.Direction, top.Frequency, top.Confidence*100), nil
}
