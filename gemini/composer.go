package gemini

import (
	"context"

	"github.com/fwojciec/scholarly"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Composer implements scholarly.EmailComposer at compile time.
var _ scholarly.EmailComposer = (*Composer)(nil)

// Composer implements scholarly.EmailComposer using Google Gemini.
type Composer struct {
	client    *genai.Client
	model     string
	counter   scholarly.TokenCounter
	maxTokens int
}

// Option configures a Composer.
type Option func(*Composer)

// WithModel sets the Gemini model name.
func WithModel(model string) Option {
	return func(c *Composer) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTokenLimit rejects prompts longer than max tokens as counted by counter.
func WithTokenLimit(counter scholarly.TokenCounter, max int) Option {
	return func(c *Composer) {
		c.counter = counter
		c.maxTokens = max
	}
}

// NewComposer creates a new Composer.
func NewComposer(client *genai.Client, opts ...Option) *Composer {
	c := &Composer{client: client, model: DefaultModel}
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

	prompt := scholarly.BuildEmailPrompt(req)

	if c.counter != nil && c.maxTokens > 0 {
		n, err := c.counter.CountTokens(ctx, prompt)
		if err != nil {
			return "", err
		}
		if n > c.maxTokens {
			return "", scholarly.Errorf(scholarly.EINVALID, "prompt is %d tokens, limit is %d", n, c.maxTokens)
		}
	}

	if c.client == nil {
		return "", scholarly.Errorf(scholarly.EINVALID, "gemini client required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", scholarly.Errorf(scholarly.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: scholarly.EmailSystemPrompt}},
		},
		Temperature: &temp,
	}
}
