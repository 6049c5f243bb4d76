package routing_test

import (
	"context"
	"testing"

	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/pattern"
	"golf-caddy-core/internal/pattern/repository/inmem"
	"golf-caddy-core/internal/pattern/usecase"
	"golf-caddy-core/internal/routing"
	"golf-caddy-core/internal/session"
	"golf-caddy-core/pkg/log"
)

func TestCheckerCheckAll(t *testing.T) {
	ctx := context.Background()
	repo := inmem.New()
	patterns := usecase.New(log.NewNop(), repo, repo, pattern.DefaultConfig())
	checker := routing.NewChecker(patterns)

	required := []model.Prerequisite{
		model.PrereqShotData,
		model.PrereqRecoveryData,
		model.PrereqActiveRound,
	}

	t.Run("everything unmet on a cold start", func(t *testing.T) {
		unmet, err := checker.CheckAll(ctx, required, session.Snapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(unmet) != 3 {
			t.Fatalf("unmet = %v, want all three", unmet)
		}
		// Input order preserved.
		for i, want := range required {
			if unmet[i] != want {
				t.Errorf("unmet[%d] = %s, want %s", i, unmet[i], want)
			}
		}
	})

	t.Run("shot data satisfied by any event", func(t *testing.T) {
		if _, err := patterns.Record(ctx, pattern.RecordInput{ClubID: "driver", Direction: model.MissSlice}); err != nil {
			t.Fatalf("record: %v", err)
		}

		unmet, err := checker.CheckAll(ctx, required, session.Snapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if containsPrereq(unmet, model.PrereqShotData) {
			t.Error("SHOT_DATA still unmet after recording an event")
		}
		if !containsPrereq(unmet, model.PrereqRecoveryData) {
			t.Error("RECOVERY_DATA should need a pressure-tagged event")
		}
	})

	t.Run("recovery data needs pressure context", func(t *testing.T) {
		_, err := patterns.Record(ctx, pattern.RecordInput{
			ClubID:    "driver",
			Direction: model.MissSlice,
			Pressure:  model.PressureContext{IsUserTagged: true},
		})
		if err != nil {
			t.Fatalf("record: %v", err)
		}

		unmet, err := checker.CheckAll(ctx, required, session.Snapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if containsPrereq(unmet, model.PrereqRecoveryData) {
			t.Error("RECOVERY_DATA still unmet after a pressure-tagged event")
		}
	})

	t.Run("active round comes from the session", func(t *testing.T) {
		round := "round-1"
		unmet, err := checker.CheckAll(ctx, required, session.Snapshot{ActiveRound: &round})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if containsPrereq(unmet, model.PrereqActiveRound) {
			t.Error("ACTIVE_ROUND unmet despite a session round")
		}
	})
}

func containsPrereq(list []model.Prerequisite, p model.Prerequisite) bool {
	for _, got := range list {
		if got == p {
			return true
		}
	}
	return false
}
