package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/model"
)

type llmPayload struct {
	Intent     string      `json:"intent"`
	Confidence float64     `json:"confidence"`
	Entities   llmEntities `json:"entities"`
}

type llmEntities struct {
	Club    *string `json:"club"`
	Hole    *int    `json:"hole"`
	Score   *int    `json:"score"`
	Yardage *int    `json:"yardage"`
	Lie     *string `json:"lie"`
}

// parsePayload decodes the model's JSON answer. Providers sometimes wrap JSON
// in markdown fences despite instructions, so those are stripped first.
func parsePayload(text string) (model.IntentType, float64, model.Entities, error) {
	cleaned := stripFences(text)

	var payload llmPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return model.IntentUnknown, 0, model.Entities{}, fmt.Errorf("%w: %v", classifier.ErrMalformedPayload, err)
	}

	if payload.Confidence < 0 || payload.Confidence > 1 {
		return model.IntentUnknown, 0, model.Entities{}, fmt.Errorf("%w: confidence %v outside [0,1]",
			classifier.ErrMalformedPayload, payload.Confidence)
	}

	entities := model.Entities{
		Club:    payload.Entities.Club,
		Hole:    payload.Entities.Hole,
		Score:   payload.Entities.Score,
		Yardage: payload.Entities.Yardage,
		Lie:     payload.Entities.Lie,
	}

	return model.ParseIntentType(payload.Intent), payload.Confidence, entities, nil
}

func stripFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}
	return strings.TrimSpace(cleaned)
}
