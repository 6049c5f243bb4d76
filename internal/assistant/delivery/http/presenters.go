package http

import (
	"golf-caddy-core/internal/assistant"
	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/routing"
)

// --- Request DTOs ---

type queryReq struct {
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
	Text      string `json:"text"       binding:"required,max=1000"`
	Modality  string `json:"modality"   binding:"omitempty,oneof=text voice"`
	Offline   bool   `json:"offline"`

	// Optional session updates. round_id "" clears the active round.
	RoundID    *string `json:"round_id"`
	HoleNumber *int    `json:"hole_number" binding:"omitempty,min=1,max=18"`
}

func (r queryReq) validate() error { return nil }

func (r queryReq) toInput() assistant.ProcessInput {
	return assistant.ProcessInput{
		SessionID:   r.SessionID,
		Text:        r.Text,
		Modality:    classifier.Modality(r.Modality),
		OfflineMode: r.Offline,
		RoundID:     r.RoundID,
		HoleNumber:  r.HoleNumber,
	}
}

// --- Response DTOs ---

type intentResp struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

type suggestionResp struct {
	Intent string `json:"intent"`
	Label  string `json:"label"`
}

type queryResp struct {
	ResultType string `json:"result_type"`
	Serialized string `json:"serialized"`

	Route       string           `json:"route,omitempty"`
	Response    string           `json:"response,omitempty"`
	Message     string           `json:"message,omitempty"`
	Suggestions []suggestionResp `json:"suggestions,omitempty"`
	Missing     []string         `json:"missing,omitempty"`

	Intent     intentResp `json:"intent"`
	Verdict    string     `json:"verdict"`
	Source     string     `json:"source"`
	Normalized string     `json:"normalized"`
	Applied    []string   `json:"applied,omitempty"`
}

func newQueryResp(out assistant.ProcessOutput) queryResp {
	resp := queryResp{
		Serialized: out.Serialized,
		Intent: intentResp{
			ID:         out.Intent.ID,
			Type:       string(out.Intent.Type),
			Confidence: out.Intent.Confidence,
		},
		Verdict:    string(out.Verdict),
		Source:     string(out.Source),
		Normalized: out.Normalized,
		Applied:    out.AppliedMods,
	}

	switch r := out.Result.(type) {
	case routing.Navigate:
		resp.ResultType = "navigate"
		resp.Route = routing.BuildRoute(r.Target)
	case routing.NoNavigation:
		resp.ResultType = "no_navigation"
		resp.Response = r.Response
	case routing.ConfirmationRequired:
		resp.ResultType = "confirmation_required"
		resp.Message = r.Message
		resp.Suggestions = make([]suggestionResp, len(r.Suggestions))
		for i, s := range r.Suggestions {
			resp.Suggestions[i] = suggestionResp{Intent: string(s.Type), Label: s.Label}
		}
	case routing.PrerequisiteMissing:
		resp.ResultType = "prerequisite_missing"
		resp.Message = r.Message
		resp.Missing = prereqStrings(r.Missing)
	}

	return resp
}

func prereqStrings(list []model.Prerequisite) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = string(p)
	}
	return out
}
