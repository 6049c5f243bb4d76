package usecase

import (
	"fmt"
	"strings"

	"golf-caddy-core/internal/classifier"
	"golf-caddy-core/internal/model"
	"golf-caddy-core/internal/session"
	"golf-caddy-core/pkg/llmprovider"
)

// buildRequest assembles the provider request: fixed instruction plus intent
// catalog, then the session window as conversation history, then the
// utterance itself.
func buildRequest(input classifier.Input) *llmprovider.Request {
	var instruction strings.Builder
	instruction.WriteString(systemInstruction)
	for _, t := range model.KnownIntentTypes {
		instruction.WriteString("\n- ")
		instruction.WriteString(string(t))
	}
	instruction.WriteString("\n- UNKNOWN")

	if ctxLine := roundContextLine(input.Session); ctxLine != "" {
		instruction.WriteString("\n\n")
		instruction.WriteString(ctxLine)
	}

	messages := make([]llmprovider.Message, 0, len(input.Session.Turns)+1)
	for _, turn := range input.Session.Turns {
		role := llmRole(turn.Role)
		if role == "" {
			continue
		}
		messages = append(messages, llmprovider.Message{
			Role:    role,
			Content: turn.Content,
		})
	}
	messages = append(messages, llmprovider.Message{
		Role:    "user",
		Content: input.NormalizedText,
	})

	return &llmprovider.Request{
		SystemInstruction: instruction.String(),
		Messages:          messages,
		Temperature:       generationTemperature,
		MaxTokens:         generationMaxTokens,
		ForceJSON:         true,
	}
}

func roundContextLine(snap session.Snapshot) string {
	if snap.ActiveRound == nil {
		return ""
	}
	if snap.CurrentHole != nil {
		return fmt.Sprintf("Context: the player is mid-round on hole %d.", *snap.CurrentHole)
	}
	return "Context: the player is mid-round."
}

func llmRole(sessionRole string) string {
	switch sessionRole {
	case session.RoleUser:
		return "user"
	case session.RoleAssistant:
		return "assistant"
	default:
		return ""
	}
}
