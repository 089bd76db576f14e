// Package openai implements scholarly.EmailComposer against any
// OpenAI-compatible chat completion endpoint.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/scholarly"
	goopenai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// Ensure Composer implements scholarly.EmailComposer at compile time.
var _ scholarly.EmailComposer = (*Composer)(nil)

// Client is the subset of *goopenai.Client used by Composer.
type Client interface {
	CreateChatCompletion(ctx context.Context, request goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// NewClient returns an OpenAI client. An empty baseURL uses the public API.
func NewClient(apiKey, baseURL string) *goopenai.Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return goopenai.NewClientWithConfig(cfg)
}

// Composer implements scholarly.EmailComposer using chat completions.
type Composer struct {
	client      Client
	model       string
	temperature float32
}

// Option configures a Composer.
type Option func(*Composer)

// WithModel sets the chat model name.
func WithModel(model string) Option {
	return func(c *Composer) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) Option {
	return func(c *Composer) {
		c.temperature = t
	}
}

// NewComposer creates a new Composer.
func NewComposer(client Client, opts ...Option) *Composer {
	c := &Composer{client: client, model: DefaultModel, temperature: 0.7}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose generates a personalised email from the request.
func (c *Composer) Compose(ctx context.Context, req scholarly.EmailRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if c.client == nil {
		return "", scholarly.Errorf(scholarly.EINVALID, "openai client required")
	}

	resp, err := c.client.CreateChatCompletion(ctx, BuildRequest(c.model, c.temperature, req))
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", scholarly.Errorf(scholarly.EINTERNAL, "model returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildRequest returns the chat completion request for an email customisation.
func BuildRequest(model string, temperature float32, req scholarly.EmailRequest) goopenai.ChatCompletionRequest {
	return goopenai.ChatCompletionRequest{
		Model: model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: scholarly.EmailSystemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: scholarly.BuildEmailPrompt(req)},
		},
		Temperature: temperature,
		N:           1,
	}
}
