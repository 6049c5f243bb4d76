package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type clientImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// newClientImpl creates a new OpenAI-compatible implementation
func newClientImpl(cfg Config) *clientImpl {
	return &clientImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request
func (c *clientImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	openAIReq := c.transformRequest(req)

	body, err := json.Marshal(openAIReq)
	if err != nil {
		return nil, fmt.Errorf("openaicompat: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openaicompat: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openaicompat: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openaicompat: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return nil, fmt.Errorf("openaicompat: failed to decode response: %w", err)
	}

	return c.transformResponse(&openAIResp), nil
}

// Model returns the model being used
func (c *clientImpl) Model() string {
	return c.model
}

func (c *clientImpl) transformRequest(req *Request) openAIRequest {
	out := openAIRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != "" {
		out.Messages = append(out.Messages, openAIMessage{Role: "system", Content: req.SystemInstruction})
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role != "user" && role != "assistant" {
			role = "user"
		}
		out.Messages = append(out.Messages, openAIMessage{Role: role, Content: msg.Content})
	}

	if req.ForceJSON {
		out.ResponseFormat = &openAIResponseFormat{Type: "json_object"}
	}

	return out
}

func (c *clientImpl) transformResponse(resp *openAIResponse) *Response {
	out := &Response{Usage: &Usage{}}

	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	if len(resp.Choices) == 0 {
		return out
	}

	out.Text = resp.Choices[0].Message.Content
	return out
}
