package offline

import "golf-caddy-core/internal/model"

// Candidate is one scored intent.
type Candidate struct {
	Type  model.IntentType
	Score float64 // [0,1]
}

// Outcome is the closed result set of an offline match. Exactly one variant
// is produced per call.
type Outcome interface {
	isOutcome()
}

// Match is a single strong result: the matcher is confident enough to route.
type Match struct {
	Intent model.Intent
	Score  float64
}

// Clarify carries up to MaxClarifyCandidates alternatives for the user to
// pick from.
type Clarify struct {
	Candidates []Candidate
}

// RequiresNetwork means the best-scoring intent cannot be served offline.
type RequiresNetwork struct {
	Type    model.IntentType
	Message string
}

// NoMatch means nothing scored at all.
type NoMatch struct{}

func (Match) isOutcome()           {}
func (Clarify) isOutcome()         {}
func (RequiresNetwork) isOutcome() {}
func (NoMatch) isOutcome()         {}
