package classifier

import (
	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/offline"
	"golf-caddy-core/internal/session"
)

// Modality selects the classification deadline: voice input arrives after
// transcription latency and is given more headroom.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityVoice Modality = "voice"
)

// Input is one utterance plus the context it arrived in.
type Input struct {
	// NormalizedText is the cleaned utterance (lowercased, slang expanded).
	NormalizedText string
	// RawText is the utterance as the user produced it.
	RawText  string
	Modality Modality
	// Session is a point-in-time copy of the conversation window.
	Session session.Snapshot
	// OfflineMode short-circuits straight to the keyword matcher.
	OfflineMode bool
}

// Verdict is the three-way confidence gate outcome, plus the offline-only
// "needs network" case.
type Verdict string

const (
	// VerdictRoute means confidence cleared the routing threshold: act
	// without asking.
	VerdictRoute Verdict = "ROUTE"
	// VerdictConfirm means mid confidence: act only after a yes/no check.
	VerdictConfirm Verdict = "CONFIRM"
	// VerdictClarify means low confidence: ask, never act.
	VerdictClarify Verdict = "CLARIFY"
	// VerdictRequiresNetwork means the matched intent cannot be served
	// offline at all.
	VerdictRequiresNetwork Verdict = "REQUIRES_NETWORK"
)

// Source records which classification path produced the result.
type Source string

const (
	SourceOnline  Source = "online"
	SourceOffline Source = "offline"
)

// Result is the classification outcome. Intent is always populated; for
// clarify verdicts its type may be UNKNOWN.
type Result struct {
	Verdict Verdict
	Intent  model.Intent
	Source  Source

	// Candidates carries the alternatives behind a clarify verdict.
	Candidates []offline.Candidate

	// Message is user-facing guidance for REQUIRES_NETWORK.
	Message string
}
