package http

import (
	"time"

	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/pattern"
)

// --- Request DTOs ---

type logShotReq struct {
	ClubID     string     `json:"club_id"     binding:"required,max=64"`
	Direction  string     `json:"direction"   binding:"required"`
	Lie        string     `json:"lie"         binding:"omitempty,oneof=TEE FAIRWAY ROUGH BUNKER GREEN UNKNOWN"`
	Timestamp  *time.Time `json:"timestamp"`
	HoleNumber *int       `json:"hole_number" binding:"omitempty,min=1,max=18"`
	Pressure   bool       `json:"pressure"`
	Notes      string     `json:"notes"       binding:"max=500"`
}

func (r logShotReq) validate() error { return nil }

func (r logShotReq) toInput() pattern.RecordInput {
	input := pattern.RecordInput{
		ClubID:     r.ClubID,
		Direction:  model.MissDirection(r.Direction),
		Lie:        model.Lie(r.Lie),
		HoleNumber: r.HoleNumber,
		Notes:      r.Notes,
	}
	if r.Timestamp != nil {
		input.Timestamp = *r.Timestamp
	}
	if r.Pressure {
		input.Pressure = model.PressureContext{IsUserTagged: true}
	}
	return input
}

// ---

type patternsReq struct {
	Club         string `form:"club"`
	PressureOnly bool   `form:"pressure_only"`
}

func (r patternsReq) toFilter() pattern.Filter {
	return pattern.Filter{
		ClubID:       r.Club,
		PressureOnly: r.PressureOnly,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	ClubID     string    `json:"club_id"`
	Direction  string    `json:"direction"`
	Lie        string    `json:"lie"`
	HoleNumber *int      `json:"hole_number,omitempty"`
	Pressure   bool      `json:"pressure"`
}

type logShotResp struct {
	Event eventResp `json:"event"`
}

func newLogShotResp(event model.MissEvent) logShotResp {
	return logShotResp{Event: eventResp{
		ID:         event.ID,
		Timestamp:  event.Timestamp,
		ClubID:     event.ClubID,
		Direction:  string(event.Direction),
		Lie:        string(event.Lie),
		HoleNumber: event.HoleNumber,
		Pressure:   event.Pressure.IsUserTagged || event.Pressure.IsInferred,
	}}
}

type patternResp struct {
	ID             string    `json:"id"`
	Direction      string    `json:"direction"`
	Frequency      int       `json:"frequency"`
	Confidence     float64   `json:"confidence"`
	LastOccurrence time.Time `json:"last_occurrence"`
	Club           string    `json:"club,omitempty"`
}

type patternsResp struct {
	Patterns []patternResp `json:"patterns"`
}

func newPatternsResp(patterns []model.MissPattern) patternsResp {
	out := patternsResp{Patterns: make([]patternResp, len(patterns))}
	for i, p := range patterns {
		out.Patterns[i] = patternResp{
			ID:             p.ID,
			Direction:      string(p.Direction),
			Frequency:      p.Frequency,
			Confidence:     p.Confidence,
			LastOccurrence: p.LastOccurrence,
			Club:           p.Club,
		}
	}
	return out
}
