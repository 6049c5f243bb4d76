package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/classifier/usecase"
	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/offline"
	"golf-caddy-core/internal/session"
	"golf-caddy-core/pkg/llmprovider"
	"golf-caddy-core/pkg/log"
)

type mockGenerator struct {
	text  string
	err   error
	calls int
	last  *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock"}, nil
}

func newUseCase(gen *mockGenerator) classifier.UseCase {
	return usecase.New(log.NewNop(), gen, offline.New(offline.Config{}), usecase.Config{})
}

func TestClassifyGate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		payload     string
		wantVerdict classifier.Verdict
		wantType    model.IntentType
	}{
		{
			name:        "high confidence routes",
			payload:     `{"intent": "SCORE_ENTRY", "confidence": 0.92, "entities": {"hole": 5, "score": 4}}`,
			wantVerdict: classifier.VerdictRoute,
			wantType:    model.IntentScoreEntry,
		},
		{
			name:        "mid confidence confirms",
			payload:     `{"intent": "SHOT_LOG", "confidence": 0.6, "entities": {}}`,
			wantVerdict: classifier.VerdictConfirm,
			wantType:    model.IntentShotLog,
		},
		{
			name:        "low confidence clarifies",
			payload:     `{"intent": "STATS_VIEW", "confidence": 0.3, "entities": {}}`,
			wantVerdict: classifier.VerdictClarify,
			wantType:    model.IntentStatsView,
		},
		{
			name:        "route threshold is inclusive",
			payload:     `{"intent": "SCORE_VIEW", "confidence": 0.75, "entities": {}}`,
			wantVerdict: classifier.VerdictRoute,
			wantType:    model.IntentScoreView,
		},
		{
			name:        "unknown intent always clarifies",
			payload:     `{"intent": "UNKNOWN", "confidence": 0.9, "entities": {}}`,
			wantVerdict: classifier.VerdictClarify,
			wantType:    model.IntentUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&mockGenerator{text: tt.payload})

			result, err := uc.Classify(ctx, classifier.Input{
				NormalizedText: "i made a 4 on hole 5",
				RawText:        "I made a 4 on hole 5",
				Modality:       classifier.ModalityText,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Verdict != tt.wantVerdict {
				t.Errorf("verdict = %s, want %s", result.Verdict, tt.wantVerdict)
			}
			if result.Intent.Type != tt.wantType {
				t.Errorf("intent = %s, want %s", result.Intent.Type, tt.wantType)
			}
			if result.Source != classifier.SourceOnline {
				t.Errorf("source = %s, want online", result.Source)
			}
		})
	}
}

func TestClassifyEntities(t *testing.T) {
	gen := &mockGenerator{text: `{"intent": "SCORE_ENTRY", "confidence": 0.9, "entities": {"hole": 5, "score": 4}}`}
	uc := newUseCase(gen)

	result, err := uc.Classify(context.Background(), classifier.Input{
		NormalizedText: "i made a 4 on hole 5",
		RawText:        "I made a 4 on hole 5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Intent.Entities.Hole == nil || *result.Intent.Entities.Hole != 5 {
		t.Errorf("hole = %v, want 5", result.Intent.Entities.Hole)
	}
	if result.Intent.Entities.Score == nil || *result.Intent.Entities.Score != 4 {
		t.Errorf("score = %v, want 4", result.Intent.Entities.Score)
	}
	if result.Intent.RawInput != "I made a 4 on hole 5" {
		t.Errorf("raw input = %q, want the original text", result.Intent.RawInput)
	}
}

func TestClassifyFencedPayload(t *testing.T) {
	gen := &mockGenerator{text: "```json\n{\"intent\": \"HELP\", \"confidence\": 0.95, \"entities\": {}}\n```"}
	uc := newUseCase(gen)

	result, err := uc.Classify(context.Background(), classifier.Input{NormalizedText: "help"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Verdict != classifier.VerdictRoute || result.Intent.Type != model.IntentHelp {
		t.Errorf("got %s/%s, want ROUTE/HELP", result.Verdict, result.Intent.Type)
	}
}

func TestClassifyDegradesToOffline(t *testing.T) {
	ctx := context.Background()

	t.Run("provider failure", func(t *testing.T) {
		uc := newUseCase(&mockGenerator{err: llmprovider.ErrAllProvidersFailed})

		result, err := uc.Classify(ctx, classifier.Input{
			NormalizedText: "what's in my bag",
			RawText:        "What's in my bag?",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Source != classifier.SourceOffline {
			t.Fatalf("source = %s, want offline", result.Source)
		}
		if result.Verdict != classifier.VerdictRoute || result.Intent.Type != model.IntentEquipmentInfo {
			t.Errorf("got %s/%s, want ROUTE/EQUIPMENT_INFO", result.Verdict, result.Intent.Type)
		}
		if result.Intent.RawInput != "What's in my bag?" {
			t.Errorf("raw input = %q, want the original text", result.Intent.RawInput)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		uc := newUseCase(&mockGenerator{text: "sure, that sounds like a score entry!"})

		result, err := uc.Classify(ctx, classifier.Input{NormalizedText: "what's in my bag"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Source != classifier.SourceOffline {
			t.Errorf("source = %s, want offline", result.Source)
		}
	})

	t.Run("out of range confidence", func(t *testing.T) {
		uc := newUseCase(&mockGenerator{text: `{"intent": "HELP", "confidence": 1.4, "entities": {}}`})

		result, err := uc.Classify(ctx, classifier.Input{NormalizedText: "what's in my bag"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Source != classifier.SourceOffline {
			t.Errorf("source = %s, want offline", result.Source)
		}
	})
}

func TestClassifyOfflineMode(t *testing.T) {
	ctx := context.Background()

	t.Run("skips the provider entirely", func(t *testing.T) {
		gen := &mockGenerator{text: `{"intent": "HELP", "confidence": 0.9, "entities": {}}`}
		uc := newUseCase(gen)

		result, err := uc.Classify(ctx, classifier.Input{
			NormalizedText: "enter score for hole 5",
			OfflineMode:    true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gen.calls != 0 {
			t.Errorf("provider called %d times in offline mode", gen.calls)
		}
		if result.Verdict != classifier.VerdictRoute || result.Intent.Type != model.IntentScoreEntry {
			t.Errorf("got %s/%s, want ROUTE/SCORE_ENTRY", result.Verdict, result.Intent.Type)
		}
	})

	t.Run("network-only intent is named", func(t *testing.T) {
		uc := newUseCase(&mockGenerator{})

		result, err := uc.Classify(ctx, classifier.Input{
			NormalizedText: "weather forecast",
			OfflineMode:    true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Verdict != classifier.VerdictRequiresNetwork {
			t.Fatalf("verdict = %s, want REQUIRES_NETWORK", result.Verdict)
		}
		if result.Intent.Type != model.IntentWeatherCheck || result.Message == "" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("ambiguous input clarifies with candidates", func(t *testing.T) {
		uc := newUseCase(&mockGenerator{})

		result, err := uc.Classify(ctx, classifier.Input{
			NormalizedText: "log a miss score on the round",
			OfflineMode:    true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Verdict != classifier.VerdictClarify {
			t.Fatalf("verdict = %s, want CLARIFY", result.Verdict)
		}
		if len(result.Candidates) == 0 {
			t.Error("expected clarify candidates")
		}
		if result.Intent.Type != model.IntentUnknown {
			t.Errorf("intent = %s, want UNKNOWN", result.Intent.Type)
		}
	})
}

func TestClassifyInputContract(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(&mockGenerator{})

	if _, err := uc.Classify(ctx, classifier.Input{NormalizedText: "   "}); !errors.Is(err, classifier.ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
	if _, err := uc.Classify(ctx, classifier.Input{NormalizedText: "help", Modality: "telepathy"}); !errors.Is(err, classifier.ErrUnknownModality) {
		t.Errorf("err = %v, want ErrUnknownModality", err)
	}
}

func TestClassifySessionContextInPrompt(t *testing.T) {
	gen := &mockGenerator{text: `{"intent": "SCORE_ENTRY", "confidence": 0.9, "entities": {}}`}
	uc := newUseCase(gen)

	input := classifier.Input{
		NormalizedText: "same club as before",
		Session:        sessionSnapshotWithHistory(t),
	}
	if _, err := uc.Classify(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.last == nil {
		t.Fatal("provider never called")
	}
	// History turns precede the utterance.
	if len(gen.last.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(gen.last.Messages))
	}
	if gen.last.Messages[2].Content != "same club as before" {
		t.Errorf("last message = %q, want the utterance", gen.last.Messages[2].Content)
	}
	if !gen.last.ForceJSON {
		t.Error("expected JSON-only response mode")
	}
}

func sessionSnapshotWithHistory(t *testing.T) session.Snapshot {
	t.Helper()
	store := session.NewStore(session.StoreConfig{})
	s := store.GetOrCreate("test")
	s.Append(session.RoleUser, "how far to the pin", time.Now())
	s.Append(session.RoleAssistant, "150 yards, a smooth 7-iron", time.Now())
	return s.Snapshot()
}
