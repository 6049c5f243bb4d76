package usecase_test

import (
	"context"
	"testing"
	"time"

	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/pattern"
	"golf-caddy-core/internal/pattern/repository/inmem"
	"golf-caddy-core/internal/pattern/usecase"
	"golf-caddy-core/pkg/log"
)

func newUseCase(t *testing.T) (pattern.UseCase, *inmem.Repository) {
	t.Helper()
	repo := inmem.New()
	uc := usecase.New(log.NewNop(), repo, repo, pattern.DefaultConfig())
	return uc, repo
}

func TestRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and timestamp", func(t *testing.T) {
		uc, repo := newUseCase(t)

		event, err := uc.Record(ctx, pattern.RecordInput{
			ClubID:    "7-iron",
			Direction: model.MissSlice,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.ID == "" {
			t.Error("expected generated event ID")
		}
		if event.Timestamp.IsZero() {
			t.Error("expected assigned timestamp")
		}
		if event.Lie != model.LieUnknown {
			t.Errorf("lie = %s, want UNKNOWN default", event.Lie)
		}

		count, err := repo.CountEvents(ctx, pattern.Filter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 1 {
			t.Errorf("stored events = %d, want 1", count)
		}
	})

	t.Run("rejects invalid direction", func(t *testing.T) {
		uc, _ := newUseCase(t)

		_, err := uc.Record(ctx, pattern.RecordInput{Direction: "SIDEWAYS"})
		if err == nil {
			t.Fatal("expected error for invalid direction")
		}
	})
}

func TestPatternsWithFilter(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	uc, _ := newUseCase(t)

	// 4 driver slices, 4 driver straights, 4 seven-iron hooks.
	for i := 0; i < 4; i++ {
		mustRecord(t, uc, pattern.RecordInput{ClubID: "driver", Direction: model.MissSlice, Timestamp: now.Add(-time.Hour)})
		mustRecord(t, uc, pattern.RecordInput{ClubID: "driver", Direction: model.MissStraight, Timestamp: now.Add(-time.Hour)})
		mustRecord(t, uc, pattern.RecordInput{ClubID: "7-iron", Direction: model.MissHook, Timestamp: now.Add(-time.Hour)})
	}

	t.Run("club filter partitions the set", func(t *testing.T) {
		patterns, err := uc.Patterns(ctx, pattern.Filter{ClubID: "driver"}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(patterns) != 1 {
			t.Fatalf("expected 1 driver pattern, got %+v", patterns)
		}
		if patterns[0].Direction != model.MissSlice {
			t.Errorf("direction = %s, want SLICE", patterns[0].Direction)
		}
		if patterns[0].Club != "driver" {
			t.Errorf("club = %q, want driver", patterns[0].Club)
		}
		if patterns[0].Frequency != 4 {
			t.Errorf("frequency = %d, want 4", patterns[0].Frequency)
		}
	})

	t.Run("unfiltered set uses the full denominator", func(t *testing.T) {
		patterns, err := uc.Patterns(ctx, pattern.Filter{}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 4/12 slices and 4/12 hooks both sit at 33%: two patterns.
		if len(patterns) != 2 {
			t.Fatalf("expected 2 patterns, got %+v", patterns)
		}
	})
}

func TestRefreshMaterializes(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	uc, repo := newUseCase(t)

	for i := 0; i < 5; i++ {
		mustRecord(t, uc, pattern.RecordInput{ClubID: "driver", Direction: model.MissSlice, Timestamp: now.Add(-time.Hour)})
	}

	filter := pattern.Filter{ClubID: "driver"}
	first, err := uc.Refresh(ctx, filter, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 pattern, got %+v", first)
	}

	stored, err := repo.ListPatterns(ctx, filter.Key())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 1 || stored[0].Direction != model.MissSlice {
		t.Fatalf("stored view mismatch: %+v", stored)
	}

	// New contradicting data replaces the view wholesale.
	for i := 0; i < 15; i++ {
		mustRecord(t, uc, pattern.RecordInput{ClubID: "driver", Direction: model.MissStraight, Timestamp: now.Add(-time.Minute)})
	}
	second, err := uc.Refresh(ctx, filter, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("expected slice pattern to fall below share floor, got %+v", second)
	}

	stored, err = repo.ListPatterns(ctx, filter.Key())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("stale patterns left behind after refresh: %+v", stored)
	}
}

func TestFilterKey(t *testing.T) {
	tests := []struct {
		name   string
		filter pattern.Filter
		want   string
	}{
		{"zero filter", pattern.Filter{}, "club=*|ctx=any"},
		{"club only", pattern.Filter{ClubID: "driver"}, "club=driver|ctx=any"},
		{"pressure only", pattern.Filter{PressureOnly: true}, "club=*|ctx=pressure"},
		{"both", pattern.Filter{ClubID: "7-iron", PressureOnly: true}, "club=7-iron|ctx=pressure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func mustRecord(t *testing.T, uc pattern.UseCase, input pattern.RecordInput) {
	t.Helper()
	if _, err := uc.Record(context.Background(), input); err != nil {
		t.Fatalf("record: %v", err)
	}
}
