package decay_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"golf-caddy-core/internal/decay"
)

func day(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func TestDecay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timestamp time.Time
		halfLife  float64
		want      float64
		tolerance float64
		wantErr   error
	}{
		{
			name:      "age zero is exactly one",
			timestamp: now,
			halfLife:  14,
			want:      1.0,
			tolerance: 0,
		},
		{
			name:      "one half-life",
			timestamp: now.Add(-day(14)),
			halfLife:  14,
			want:      0.5,
			tolerance: 0.01,
		},
		{
			name:      "two half-lives",
			timestamp: now.Add(-day(28)),
			halfLife:  14,
			want:      0.25,
			tolerance: 0.01,
		},
		{
			name:      "past hard cutoff is exactly zero",
			timestamp: now.Add(-day(85)),
			halfLife:  14,
			want:      0.0,
			tolerance: 0,
		},
		{
			name:      "at cutoff boundary still nonzero",
			timestamp: now.Add(-day(84)),
			halfLife:  14,
			want:      math.Pow(0.5, 6),
			tolerance: 0.001,
		},
		{
			name:      "future timestamp rejected",
			timestamp: now.Add(time.Hour),
			halfLife:  14,
			wantErr:   decay.ErrFutureTimestamp,
		},
		{
			name:      "non-positive half-life rejected",
			timestamp: now,
			halfLife:  0,
			wantErr:   decay.ErrInvalidHalfLife,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decay.Decay(tt.timestamp, now, tt.halfLife)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Decay() = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestDecayedConfidence(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("scales by decay weight", func(t *testing.T) {
		got, err := decay.DecayedConfidence(0.8, now.Add(-day(14)), now, 14)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(got-0.4) > 0.01 {
			t.Errorf("DecayedConfidence() = %v, want ~0.4", got)
		}
	})

	t.Run("rejects out-of-range base", func(t *testing.T) {
		if _, err := decay.DecayedConfidence(1.2, now, now, 14); !errors.Is(err, decay.ErrConfidenceOutOfRange) {
			t.Errorf("expected ErrConfidenceOutOfRange, got %v", err)
		}
		if _, err := decay.DecayedConfidence(-0.1, now, now, 14); !errors.Is(err, decay.ErrConfidenceOutOfRange) {
			t.Errorf("expected ErrConfidenceOutOfRange, got %v", err)
		}
	})

	t.Run("rejects future occurrence", func(t *testing.T) {
		if _, err := decay.DecayedConfidence(0.5, now.Add(time.Minute), now, 14); !errors.Is(err, decay.ErrFutureTimestamp) {
			t.Errorf("expected ErrFutureTimestamp, got %v", err)
		}
	})
}

func TestIsWithinRetentionWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timestamp time.Time
		retention int
		want      bool
	}{
		{"well inside", now.Add(-day(89)), 90, true},
		{"exactly at boundary is within", now.Add(-day(90)), 90, true},
		{"just outside", now.Add(-day(91)), 90, false},
		{"fresh event", now, 90, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decay.IsWithinRetentionWindow(tt.timestamp, tt.retention, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsWithinRetentionWindow() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("future timestamp rejected", func(t *testing.T) {
		if _, err := decay.IsWithinRetentionWindow(now.Add(time.Hour), 90, now); !errors.Is(err, decay.ErrFutureTimestamp) {
			t.Errorf("expected ErrFutureTimestamp, got %v", err)
		}
	})

	t.Run("age days is fractional", func(t *testing.T) {
		age, err := decay.AgeDays(now.Add(-36*time.Hour), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(age-1.5) > 1e-9 {
			t.Errorf("AgeDays() = %v, want 1.5", age)
		}
	})
}
