package usecase

import (
	"context"
	"fmt"
	"time"

	"golf-caddy-core/internal/assistant"
	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/routing"
	"golf-caddy-core/internal/session"
)

// Process runs one utterance through the whole pipeline. Every input yields
// exactly one result; uncertainty is expressed in the result, not as errors.
func (uc *implUseCase) Process(ctx context.Context, input assistant.ProcessInput) (assistant.ProcessOutput, error) {
	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	stageStart := time.Now()
	norm := uc.normalizer.Normalize(input.Text)
	uc.metrics.ObserveStage(stageNormalize, time.Since(stageStart))

	if norm.Normalized == "" {
		return assistant.ProcessOutput{}, classifier.ErrEmptyInput
	}

	sess := uc.sessions.GetOrCreate(sessionID)
	if input.RoundID != nil {
		sess.SetRound(*input.RoundID)
	}
	if input.HoleNumber != nil {
		sess.SetHole(*input.HoleNumber)
	}
	snap := sess.Snapshot()

	stageStart = time.Now()
	classification, err := uc.classifier.Classify(ctx, classifier.Input{
		NormalizedText: norm.Normalized,
		RawText:        input.Text,
		Modality:       input.Modality,
		Session:        snap,
		OfflineMode:    input.OfflineMode,
	})
	uc.metrics.ObserveStage(stageClassify, time.Since(stageStart))
	if err != nil {
		return assistant.ProcessOutput{}, fmt.Errorf("classify: %w", err)
	}

	uc.metrics.ObserveClassification(string(classification.Verdict), string(classification.Source))
	if classification.Source == classifier.SourceOffline && !input.OfflineMode {
		// The device was online; landing offline means the provider chain
		// gave out.
		uc.metrics.ObserveFallback()
	}

	stageStart = time.Now()
	result, err := uc.router.Route(ctx, routing.Input{
		Classification: classification,
		Session:        snap,
		Now:            uc.now(),
	})
	uc.metrics.ObserveStage(stageRoute, time.Since(stageStart))
	if err != nil {
		return assistant.ProcessOutput{}, fmt.Errorf("route: %w", err)
	}
	uc.metrics.ObserveRoutingResult(resultVariant(result))

	now := uc.now()
	sess.Append(session.RoleUser, input.Text, now)
	sess.Append(session.RoleAssistant, assistantReply(result), now)

	uc.l.Infof(ctx, logPrefixProcess+"session=%s intent=%s verdict=%s source=%s result=%s",
		sessionID, classification.Intent.Type, classification.Verdict, classification.Source, resultVariant(result))

	return assistant.ProcessOutput{
		Result:      result,
		Serialized:  result.Serialize(),
		Normalized:  norm.Normalized,
		AppliedMods: norm.Applied,
		Intent:      classification.Intent,
		Verdict:     classification.Verdict,
		Source:      classification.Source,
	}, nil
}

func resultVariant(result routing.Result) string {
	switch result.(type) {
	case routing.Navigate:
		return variantNavigate
	case routing.NoNavigation:
		return variantNoNavigation
	case routing.ConfirmationRequired:
		return variantConfirmation
	case routing.PrerequisiteMissing:
		return variantPrereqMissing
	default:
		return "unknown"
	}
}

// assistantReply is the turn recorded in session history so follow-up
// classification sees what the assistant last said.
func assistantReply(result routing.Result) string {
	switch r := result.(type) {
	case routing.Navigate:
		return "Opening " + routing.BuildRoute(r.Target) + "."
	case routing.NoNavigation:
		return r.Response
	case routing.ConfirmationRequired:
		return r.Message
	case routing.PrerequisiteMissing:
		return r.Message
	default:
		return ""
	}
}
