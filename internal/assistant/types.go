package assistant

import (
	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/routing"
)

// ProcessInput is one user utterance plus device and session context.
type ProcessInput struct {
	SessionID string
	Text      string
	Modality  classifier.Modality
	// OfflineMode is the device's declared network state.
	OfflineMode bool

	// Optional session updates carried with the utterance. RoundID set to the
	// empty string clears the active round.
	RoundID    *string
	HoleNumber *int
}

// ProcessOutput is the pipeline outcome plus the intermediate facts clients
// and tests care about.
type ProcessOutput struct {
	Result     routing.Result
	Serialized string

	Normalized  string
	AppliedMods []string
	Intent      model.Intent
	Verdict     classifier.Verdict
	Source      classifier.Source
}
