package usecase_test

import (
	"context"
	"testing"
	"time"

	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/offline"
	"golf-caddy-core/internal/pattern"
	"golf-caddy-core/internal/routing"
	"golf-caddy-core/internal/routing/usecase"
	"golf-caddy-core/internal/session"
	"golf-caddy-core/pkg/log"
)

type stubChecker struct {
	unmet map[model.Prerequisite]bool
}

func (s stubChecker) CheckAll(_ context.Context, required []model.Prerequisite, _ session.Snapshot) ([]model.Prerequisite, error) {
	var out []model.Prerequisite
	for _, p := range required {
		if s.unmet[p] {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubPatterns struct {
	pattern.UseCase
	patterns []model.MissPattern
}

func (s stubPatterns) Patterns(context.Context, pattern.Filter, time.Time) ([]model.MissPattern, error) {
	return s.patterns, nil
}

func newRouter(checker routing.PrerequisiteChecker, patterns pattern.UseCase) routing.UseCase {
	return usecase.New(log.NewNop(), checker, patterns)
}

func routeInput(verdict classifier.Verdict, intent model.Intent) routing.Input {
	return routing.Input{
		Classification: classifier.Result{Verdict: verdict, Intent: intent},
		Now:            time.Now().UTC(),
	}
}

func TestRouteNavigate(t *testing.T) {
	ctx := context.Background()
	router := newRouter(stubChecker{}, stubPatterns{})

	hole, score := 5, 4
	intent := model.NewIntent(model.IntentScoreEntry, 0.9, model.Entities{Hole: &hole, Score: &score}, "4 on hole 5")

	result, err := router.Route(ctx, routeInput(classifier.VerdictRoute, intent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nav, ok := result.(routing.Navigate)
	if !ok {
		t.Fatalf("result = %T, want Navigate", result)
	}
	if got := routing.BuildRoute(nav.Target); got != "scoring/entry?hole=5&score=4" {
		t.Errorf("route = %q", got)
	}
}

func TestRouteSessionFillsParams(t *testing.T) {
	ctx := context.Background()
	router := newRouter(stubChecker{}, stubPatterns{})

	round := "round-1"
	sessionHole := 6
	userHole := 7
	input := routing.Input{
		Classification: classifier.Result{
			Verdict: classifier.VerdictRoute,
			Intent:  model.NewIntent(model.IntentScoreEntry, 0.9, model.Entities{Hole: &userHole}, ""),
		},
		Session: session.Snapshot{ActiveRound: &round, CurrentHole: &sessionHole},
		Now:     time.Now().UTC(),
	}

	result, err := router.Route(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nav := result.(routing.Navigate)

	// The stated hole beats the tracked one; the round fills in silently.
	if nav.Target.Params["hole"] != "7" {
		t.Errorf("hole = %q, want the user's 7", nav.Target.Params["hole"])
	}
	if nav.Target.Params["round"] != "round-1" {
		t.Errorf("round = %q, want round-1", nav.Target.Params["round"])
	}
}

func TestRouteConfirm(t *testing.T) {
	router := newRouter(stubChecker{}, stubPatterns{})

	intent := model.NewIntent(model.IntentShotLog, 0.6, model.Entities{}, "log it")
	result, err := router.Route(context.Background(), routeInput(classifier.VerdictConfirm, intent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	confirm, ok := result.(routing.ConfirmationRequired)
	if !ok {
		t.Fatalf("result = %T, want ConfirmationRequired", result)
	}
	if confirm.Message != "Just to confirm: log a shot?" {
		t.Errorf("message = %q", confirm.Message)
	}
	if len(confirm.Suggestions) != 1 || confirm.Suggestions[0].Type != model.IntentShotLog {
		t.Errorf("suggestions = %+v", confirm.Suggestions)
	}
}

func TestRouteClarify(t *testing.T) {
	router := newRouter(stubChecker{}, stubPatterns{})

	input := routing.Input{
		Classification: classifier.Result{
			Verdict: classifier.VerdictClarify,
			Intent:  model.NewIntent(model.IntentUnknown, 0.2, model.Entities{}, "hmm"),
			Candidates: []offline.Candidate{
				{Type: model.IntentShotLog, Score: 0.6},
				{Type: model.IntentScoreEntry, Score: 0.4},
			},
		},
		Now: time.Now().UTC(),
	}

	result, err := router.Route(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	confirm, ok := result.(routing.ConfirmationRequired)
	if !ok {
		t.Fatalf("result = %T, want ConfirmationRequired", result)
	}
	if len(confirm.Suggestions) != 2 {
		t.Errorf("suggestions = %+v, want both candidates", confirm.Suggestions)
	}
}

func TestRouteRequiresNetwork(t *testing.T) {
	router := newRouter(stubChecker{}, stubPatterns{})

	input := routing.Input{
		Classification: classifier.Result{
			Verdict: classifier.VerdictRequiresNetwork,
			Intent:  model.NewIntent(model.IntentWeatherCheck, 0, model.Entities{}, "weather"),
			Message: "needs network",
		},
		Now: time.Now().UTC(),
	}

	result, err := router.Route(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noNav, ok := result.(routing.NoNavigation)
	if !ok {
		t.Fatalf("result = %T, want NoNavigation", result)
	}
	if noNav.Response != "needs network" {
		t.Errorf("response = %q", noNav.Response)
	}
}

func TestRoutePrerequisiteMissing(t *testing.T) {
	router := newRouter(stubChecker{unmet: map[model.Prerequisite]bool{model.PrereqRecoveryData: true}}, stubPatterns{})

	intent := model.NewIntent(model.IntentRecoveryCheck, 0.9, model.Entities{}, "how is my recovery")
	result, err := router.Route(context.Background(), routeInput(classifier.VerdictRoute, intent))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing, ok := result.(routing.PrerequisiteMissing)
	if !ok {
		t.Fatalf("result = %T, want PrerequisiteMissing", result)
	}
	if len(missing.Missing) != 1 || missing.Missing[0] != model.PrereqRecoveryData {
		t.Errorf("missing = %v", missing.Missing)
	}
	if missing.Message == "" {
		t.Error("expected a user-facing message")
	}
}

func TestRouteInline(t *testing.T) {
	ctx := context.Background()

	t.Run("help", func(t *testing.T) {
		router := newRouter(stubChecker{}, stubPatterns{})

		intent := model.NewIntent(model.IntentHelp, 0.95, model.Entities{}, "help")
		result, err := router.Route(ctx, routeInput(classifier.VerdictRoute, intent))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		noNav, ok := result.(routing.NoNavigation)
		if !ok {
			t.Fatalf("result = %T, want NoNavigation", result)
		}
		if noNav.Response != usecase.MsgHelp {
			t.Errorf("response = %q", noNav.Response)
		}
	})

	t.Run("miss pattern with data", func(t *testing.T) {
		router := newRouter(stubChecker{}, stubPatterns{patterns: []model.MissPattern{
			{Direction: model.MissSlice, Frequency: 7, Confidence: 0.7, Club: "driver"},
		}})

		intent := model.NewIntent(model.IntentMissPatternQuery, 0.9, model.Entities{}, "where do i miss")
		result, err := router.Route(ctx, routeInput(classifier.VerdictRoute, intent))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		noNav := result.(routing.NoNavigation)
		want := "Lately your driver tends to miss SLICE (7 recent shots, 70% confidence)."
		if noNav.Response != want {
			t.Errorf("response = %q, want %q", noNav.Response, want)
		}
	})

	t.Run("miss pattern without data", func(t *testing.T) {
		router := newRouter(stubChecker{}, stubPatterns{})

		intent := model.NewIntent(model.IntentMissPatternQuery, 0.9, model.Entities{}, "where do i miss")
		result, err := router.Route(ctx, routeInput(classifier.VerdictRoute, intent))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.(routing.NoNavigation).Response != usecase.MsgNoMissPattern {
			t.Errorf("response = %q", result.(routing.NoNavigation).Response)
		}
	})
}

func TestRouteDeterministic(t *testing.T) {
	router := newRouter(stubChecker{}, stubPatterns{})

	hole := 5
	intent := model.Intent{
		ID:         "fixed",
		Type:       model.IntentScoreEntry,
		Confidence: 0.9,
		Entities:   model.Entities{Hole: &hole},
		RawInput:   "4 on hole 5",
	}
	input := routeInput(classifier.VerdictRoute, intent)

	first, err := router.Route(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := router.Route(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Serialize() != second.Serialize() {
		t.Errorf("same input serialized differently:\n%s\n%s", first.Serialize(), second.Serialize())
	}
}
