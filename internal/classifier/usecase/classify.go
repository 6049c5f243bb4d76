package usecase

import (
	"context"
	"strings"

	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/offline"
)

// Classify runs the online path when possible and degrades to the keyword
// matcher on any provider failure. Classification uncertainty is expressed
// through the verdict, never through an error.
func (uc implUseCase) Classify(ctx context.Context, input classifier.Input) (classifier.Result, error) {
	if strings.TrimSpace(input.NormalizedText) == "" {
		return classifier.Result{}, classifier.ErrEmptyInput
	}

	timeout := uc.cfg.TextTimeout
	switch input.Modality {
	case classifier.ModalityText, "":
	case classifier.ModalityVoice:
		timeout = uc.cfg.VoiceTimeout
	default:
		return classifier.Result{}, classifier.ErrUnknownModality
	}

	if input.OfflineMode {
		return uc.classifyOffline(input), nil
	}

	genCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := uc.generator.GenerateContent(genCtx, buildRequest(input))
	if err != nil {
		uc.l.Warnf(ctx, logPrefixClassify+"provider chain failed, degrading to offline: %v", err)
		return uc.classifyOffline(input), nil
	}

	intentType, confidence, entities, err := parsePayload(resp.Text)
	if err != nil {
		uc.l.Warnf(ctx, logPrefixClassify+"unusable payload from %s, degrading to offline: %v", resp.ProviderName, err)
		return uc.classifyOffline(input), nil
	}

	return uc.gate(intentType, confidence, entities, input), nil
}

// gate applies the three-way confidence gate to an online classification.
func (uc implUseCase) gate(t model.IntentType, confidence float64, entities model.Entities, input classifier.Input) classifier.Result {
	intent := model.NewIntent(t, confidence, entities, input.RawText)

	if t == model.IntentUnknown {
		return classifier.Result{
			Verdict:    classifier.VerdictClarify,
			Intent:     intent,
			Source:     classifier.SourceOnline,
			Candidates: uc.matcher.Scores(input.NormalizedText),
		}
	}

	switch {
	case confidence >= uc.cfg.RouteThreshold:
		return classifier.Result{
			Verdict: classifier.VerdictRoute,
			Intent:  intent,
			Source:  classifier.SourceOnline,
		}
	case confidence >= uc.cfg.ConfirmThreshold:
		return classifier.Result{
			Verdict: classifier.VerdictConfirm,
			Intent:  intent,
			Source:  classifier.SourceOnline,
		}
	default:
		return classifier.Result{
			Verdict:    classifier.VerdictClarify,
			Intent:     intent,
			Source:     classifier.SourceOnline,
			Candidates: uc.matcher.Scores(input.NormalizedText),
		}
	}
}

// classifyOffline maps the keyword matcher's outcome onto the shared verdict
// vocabulary. Offline has no confirm tier: either the match is strong enough
// to act on or the user is asked to pick.
func (uc implUseCase) classifyOffline(input classifier.Input) classifier.Result {
	switch outcome := uc.matcher.Match(input.NormalizedText).(type) {
	case offline.Match:
		intent := outcome.Intent
		intent.RawInput = input.RawText
		return classifier.Result{
			Verdict: classifier.VerdictRoute,
			Intent:  intent,
			Source:  classifier.SourceOffline,
		}

	case offline.Clarify:
		return classifier.Result{
			Verdict:    classifier.VerdictClarify,
			Intent:     model.NewIntent(model.IntentUnknown, outcome.Candidates[0].Score, model.Entities{}, input.RawText),
			Source:     classifier.SourceOffline,
			Candidates: outcome.Candidates,
		}

	case offline.RequiresNetwork:
		return classifier.Result{
			Verdict: classifier.VerdictRequiresNetwork,
			Intent:  model.NewIntent(outcome.Type, 0, model.Entities{}, input.RawText),
			Source:  classifier.SourceOffline,
			Message: outcome.Message,
		}

	default: // offline.NoMatch
		return classifier.Result{
			Verdict: classifier.VerdictClarify,
			Intent:  model.NewIntent(model.IntentUnknown, 0, model.Entities{}, input.RawText),
			Source:  classifier.SourceOffline,
		}
	}
}
