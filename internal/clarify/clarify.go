// Package clarify turns uncertain classifications into the question shown to
// the user: a yes/no confirmation or a short pick-one list.
package clarify

import (
	"fmt"

	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/offline"
)

// Suggestion is one option offered to the user.
type Suggestion struct {
	Type  model.IntentType
	Label string
}

// Prompt is the question presented to the user.
type Prompt struct {
	Message     string
	Suggestions []Suggestion
}

// ForConfirm builds the yes/no question for a mid-confidence intent.
func ForConfirm(t model.IntentType) Prompt {
	return Prompt{
		Message: fmt.Sprintf(MsgConfirm, Label(t)),
		Suggestions: []Suggestion{
			{Type: t, Label: Label(t)},
		},
	}
}

// ForClarify builds the pick-one question from scored candidates. Candidates
// are deduplicated by type, capped at MaxSuggestions, and keep their incoming
// order. With no usable candidates the prompt degrades to open guidance.
func ForClarify(candidates []offline.Candidate) Prompt {
	seen := make(map[model.IntentType]bool, len(candidates))
	suggestions := make([]Suggestion, 0, MaxSuggestions)

	for _, c := range candidates {
		if c.Type == model.IntentUnknown || seen[c.Type] {
			continue
		}
		seen[c.Type] = true
		suggestions = append(suggestions, Suggestion{Type: c.Type, Label: Label(c.Type)})
		if len(suggestions) == MaxSuggestions {
			break
		}
	}

	if len(suggestions) == 0 {
		return Prompt{Message: MsgClarifyOpen}
	}
	return Prompt{
		Message:     MsgClarifyOptions,
		Suggestions: suggestions,
	}
}
