package usecase

import (
	"context"
	"fmt"
	"strings"

	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/clarify"
	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/routing"
)

// Route maps a classification verdict onto exactly one Result. The result is
// fully determined by intent, verdict, and prerequisite outcome, so identical
// inputs serialize byte-identically.
func (uc implUseCase) Route(ctx context.Context, input routing.Input) (routing.Result, error) {
	c := input.Classification

	switch c.Verdict {
	case classifier.VerdictRoute:
		return uc.routeIntent(ctx, input)

	case classifier.VerdictConfirm:
		prompt := clarify.ForConfirm(c.Intent.Type)
		return routing.ConfirmationRequired{
			Intent:      c.Intent,
			Message:     prompt.Message,
			Suggestions: prompt.Suggestions,
		}, nil

	case classifier.VerdictClarify:
		prompt := clarify.ForClarify(c.Candidates)
		return routing.ConfirmationRequired{
			Intent:      c.Intent,
			Message:     prompt.Message,
			Suggestions: prompt.Suggestions,
		}, nil

	case classifier.VerdictRequiresNetwork:
		return routing.NoNavigation{
			Intent:   c.Intent,
			Response: c.Message,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", routing.ErrUnknownVerdict, c.Verdict)
	}
}

func (uc implUseCase) routeIntent(ctx context.Context, input routing.Input) (routing.Result, error) {
	intent := input.Classification.Intent

	unmet, err := uc.checker.CheckAll(ctx, prerequisites[intent.Type], input.Session)
	if err != nil {
		return nil, fmt.Errorf("prerequisite check: %w", err)
	}
	if len(unmet) > 0 {
		return routing.PrerequisiteMissing{
			Intent:  intent,
			Missing: unmet,
			Message: prereqMessage(unmet),
		}, nil
	}

	if inlineIntents[intent.Type] {
		response, err := uc.respondInline(ctx, intent, input)
		if err != nil {
			return nil, err
		}
		return routing.NoNavigation{Intent: intent, Response: response}, nil
	}

	dest, ok := destinations[intent.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", routing.ErrNoDestination, intent.Type)
	}

	return routing.Navigate{
		Intent: intent,
		Target: routing.Target{
			Module: dest.Module,
			Screen: dest.Screen,
			Params: targetParams(intent, input),
		},
	}, nil
}

// targetParams merges extracted entities with session round state. Entities
// win on conflict; the user saying "hole 7" beats the tracker saying 6.
func targetParams(intent model.Intent, input routing.Input) map[string]string {
	params := intent.Entities.Params()

	if input.Session.ActiveRound != nil {
		if _, ok := params["round"]; !ok {
			params["round"] = *input.Session.ActiveRound
		}
	}
	if input.Session.CurrentHole != nil {
		if _, ok := params["hole"]; !ok {
			params["hole"] = fmt.Sprintf("%d", *input.Session.CurrentHole)
		}
	}
	return params
}

func prereqMessage(unmet []model.Prerequisite) string {
	parts := make([]string, 0, len(unmet))
	for _, p := range unmet {
		if msg, ok := prereqMessages[p]; ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, " ")
}
