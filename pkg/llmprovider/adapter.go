package llmprovider

import (
	"context"

	"golf-caddy-core/pkg/gemini"
	"golf-caddy-core/pkg/openaicompat"
)

// GeminiAdapter adapts the Gemini client to the Provider interface.
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter wraps a Gemini client as a Provider.
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		ForceJSON:         req.ForceJSON,
	}
	for _, msg := range req.Messages {
		role := gemini.RoleUser
		if msg.Role == "assistant" {
			role = gemini.RoleModel
		}
		geminiReq.Messages = append(geminiReq.Messages, gemini.Message{Role: role, Content: msg.Content})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// OpenAICompatAdapter adapts an OpenAI-compatible client to the Provider interface.
type OpenAICompatAdapter struct {
	name   string
	client openaicompat.IClient
}

// NewOpenAICompatAdapter wraps an OpenAI-compatible client as a Provider.
// The name is the configured provider name (e.g. "deepseek").
func NewOpenAICompatAdapter(name string, client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

func (a *OpenAICompatAdapter) Name() string  { return a.name }
func (a *OpenAICompatAdapter) Model() string { return a.client.Model() }

func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	compatReq := &openaicompat.Request{
		SystemInstruction: req.SystemInstruction,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		ForceJSON:         req.ForceJSON,
	}
	for _, msg := range req.Messages {
		compatReq.Messages = append(compatReq.Messages, openaicompat.Message{Role: msg.Role, Content: msg.Content})
	}

	resp, err := a.client.GenerateContent(ctx, compatReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}
