// Package openaicompat implements a client for OpenAI-compatible
// chat-completion endpoints (DeepSeek, Qwen/DashScope, local gateways).
package openaicompat

import (
	"context"
	"errors"
	"net/http"
)

// IClient defines the interface for OpenAI-compatible providers.
// Implementations are safe for concurrent use.
type IClient interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// Config configures an OpenAI-compatible client.
type Config struct {
	APIKey     string
	BaseURL    string // e.g. https://api.deepseek.com/v1
	Model      string
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("openaicompat: API key is required")
	}
	if c.BaseURL == "" {
		return errors.New("openaicompat: base URL is required")
	}
	if c.Model == "" {
		return errors.New("openaicompat: model is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	return nil
}

// New creates a new client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
