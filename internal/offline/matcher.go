// Package offline implements the deterministic keyword-scoring fallback
// classifier used when the remote classifier is unreachable.
package offline

import (
	"fmt"
	"sort"
	"strings"

	"golf-caddy-core/internal/model"
)

// Matcher scores normalized text against static keyword sets.
type Matcher struct {
	strongThreshold float64
	weakThreshold   float64
}

// Config holds the matcher thresholds.
type Config struct {
	StrongThreshold float64
	WeakThreshold   float64
}

// New creates a Matcher. Zero thresholds fall back to defaults.
func New(cfg Config) *Matcher {
	if cfg.StrongThreshold <= 0 {
		cfg.StrongThreshold = DefaultStrongThreshold
	}
	if cfg.WeakThreshold <= 0 {
		cfg.WeakThreshold = DefaultWeakThreshold
	}
	return &Matcher{
		strongThreshold: cfg.StrongThreshold,
		weakThreshold:   cfg.WeakThreshold,
	}
}

// Scores returns every intent with a nonzero keyword score, sorted
// descending. Ties break by the fixed intent order so output is stable.
func (m *Matcher) Scores(normalizedText string) []Candidate {
	candidates := make([]Candidate, 0, len(keywordSets))

	for _, intentType := range model.KnownIntentTypes {
		keywords := keywordSets[intentType]

		var matched, total float64
		for keyword, weight := range keywords {
			total += weight
			if strings.Contains(normalizedText, keyword) {
				matched += weight
			}
		}
		if matched == 0 {
			continue
		}

		candidates = append(candidates, Candidate{
			Type:  intentType,
			Score: matched / total,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return intentOrder(candidates[i].Type) < intentOrder(candidates[j].Type)
	})

	return candidates
}

// Match classifies normalized text into exactly one Outcome. The strong/weak
// tier structure mirrors the online classifier's Route/Confirm/Clarify gate.
func (m *Matcher) Match(normalizedText string) Outcome {
	candidates := m.Scores(normalizedText)
	if len(candidates) == 0 {
		return NoMatch{}
	}

	best := candidates[0]

	if best.Score >= m.strongThreshold {
		if networkOnlyIntents[best.Type] {
			return RequiresNetwork{
				Type:    best.Type,
				Message: fmt.Sprintf(MsgRequiresNetwork, best.Type),
			}
		}
		entities := ExtractEntities(normalizedText)
		return Match{
			Intent: model.NewIntent(best.Type, best.Score, entities, normalizedText),
			Score:  best.Score,
		}
	}

	if best.Score >= m.weakThreshold {
		limit := MaxClarifyCandidates
		if len(candidates) < limit {
			limit = len(candidates)
		}
		return Clarify{Candidates: candidates[:limit]}
	}

	// Below the weak tier: tell the user when the likely intent simply
	// cannot work offline, otherwise report a true no-match.
	if networkOnlyIntents[best.Type] {
		return RequiresNetwork{
			Type:    best.Type,
			Message: fmt.Sprintf(MsgRequiresNetwork, best.Type),
		}
	}
	return NoMatch{}
}

func intentOrder(t model.IntentType) int {
	for i, known := range model.KnownIntentTypes {
		if known == t {
			return i
		}
	}
	return len(model.KnownIntentTypes)
}
