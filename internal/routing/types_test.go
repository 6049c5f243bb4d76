package routing_test

import (
	"testing"

	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/routing"
)

func TestBuildRoute(t *testing.T) {
	tests := []struct {
		name   string
		target routing.Target
		want   string
	}{
		{
			name:   "no params",
			target: routing.Target{Module: "stats", Screen: "overview"},
			want:   "stats/overview",
		},
		{
			name: "params sorted by key",
			target: routing.Target{
				Module: "scoring",
				Screen: "entry",
				Params: map[string]string{"score": "4", "hole": "5"},
			},
			want: "scoring/entry?hole=5&score=4",
		},
		{
			name: "values escaped",
			target: routing.Target{
				Module: "caddy",
				Screen: "club",
				Params: map[string]string{"club": "sand wedge"},
			},
			want: "caddy/club?club=sand+wedge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := routing.BuildRoute(tt.target); got != tt.want {
				t.Errorf("BuildRoute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildRouteInsertionOrderIndependent(t *testing.T) {
	a := routing.Target{Module: "scoring", Screen: "entry", Params: map[string]string{}}
	a.Params["hole"] = "5"
	a.Params["score"] = "4"
	a.Params["round"] = "r1"

	b := routing.Target{Module: "scoring", Screen: "entry", Params: map[string]string{}}
	b.Params["round"] = "r1"
	b.Params["score"] = "4"
	b.Params["hole"] = "5"

	if routing.BuildRoute(a) != routing.BuildRoute(b) {
		t.Errorf("insertion order leaked into serialization: %q vs %q",
			routing.BuildRoute(a), routing.BuildRoute(b))
	}
}

func TestResultSerialize(t *testing.T) {
	intent := model.Intent{Type: model.IntentScoreEntry}

	nav := routing.Navigate{
		Intent: intent,
		Target: routing.Target{Module: "scoring", Screen: "entry", Params: map[string]string{"hole": "5"}},
	}
	if got := nav.Serialize(); got != "NAVIGATE intent=SCORE_ENTRY route=scoring/entry?hole=5" {
		t.Errorf("Navigate.Serialize() = %q", got)
	}

	missing := routing.PrerequisiteMissing{
		Intent:  model.Intent{Type: model.IntentRecoveryCheck},
		Missing: []model.Prerequisite{model.PrereqRecoveryData},
	}
	if got := missing.Serialize(); got != "PREREQUISITE_MISSING intent=RECOVERY_CHECK missing=RECOVERY_DATA" {
		t.Errorf("PrerequisiteMissing.Serialize() = %q", got)
	}

	// Same content, two constructions, one serialization.
	if nav.Serialize() != (routing.Navigate{
		Intent: intent,
		Target: routing.Target{Module: "scoring", Screen: "entry", Params: map[string]string{"hole": "5"}},
	}).Serialize() {
		t.Error("identical content serialized differently")
	}
}
