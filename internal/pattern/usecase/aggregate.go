package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"golf-caddy-core/internal/decay"
	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/pattern"
)

// Aggregate turns discrete miss events into decayed, confidence-scored
// patterns, ordered by confidence descending.
//
// Events outside the retention window are excluded. The remaining set forms
// the denominator for the frequency-share floor; STRAIGHT results count in
// the denominator but never produce a pattern. Each contributing event's
// weight is decayed before the aggregate confidence is computed, so a
// direction confirmed only by stale events scores near zero even at a high
// share.
func Aggregate(events []model.MissEvent, now time.Time, cfg pattern.Config) ([]model.MissPattern, error) {
	qualifying := make([]model.MissEvent, 0, len(events))
	for _, e := range events {
		within, err := decay.IsWithinRetentionWindow(e.Timestamp, cfg.RetentionDays, now)
		if err != nil {
			return nil, err
		}
		if within {
			qualifying = append(qualifying, e)
		}
	}

	total := len(qualifying)
	if total == 0 {
		return nil, nil
	}

	groups := make(map[model.MissDirection][]model.MissEvent)
	for _, e := range qualifying {
		groups[e.Direction] = append(groups[e.Direction], e)
	}

	patterns := make([]model.MissPattern, 0, len(groups))
	for direction, group := range groups {
		// Straight shots anchor the denominator but are not a miss tendency.
		if direction == model.MissStraight {
			continue
		}

		frequency := len(group)
		if frequency < cfg.MinSampleSize {
			continue
		}

		share := float64(frequency) / float64(total)
		if share < cfg.MinShare {
			continue
		}

		var weightSum float64
		var lastOccurrence time.Time
		for _, e := range group {
			weight, err := decay.Decay(e.Timestamp, now, cfg.HalfLifeDays)
			if err != nil {
				return nil, err
			}
			weightSum += weight
			if e.Timestamp.After(lastOccurrence) {
				lastOccurrence = e.Timestamp
			}
		}

		confidence := (weightSum / float64(frequency)) * share
		if confidence < cfg.MinConfidence {
			continue
		}

		patterns = append(patterns, model.MissPattern{
			ID:             uuid.NewString(),
			Direction:      direction,
			Frequency:      frequency,
			Confidence:     confidence,
			LastOccurrence: lastOccurrence,
		})
	}

	// Confidence descending; ties break by larger sample, then by more
	// recent occurrence, then by direction name for full determinism.
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Confidence != patterns[j].Confidence {
			return patterns[i].Confidence > patterns[j].Confidence
		}
		if patterns[i].Frequency != patterns[j].Frequency {
			return patterns[i].Frequency > patterns[j].Frequency
		}
		if !patterns[i].LastOccurrence.Equal(patterns[j].LastOccurrence) {
			return patterns[i].LastOccurrence.After(patterns[j].LastOccurrence)
		}
		return patterns[i].Direction < patterns[j].Direction
	})

	return patterns, nil
}
