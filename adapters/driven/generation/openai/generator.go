// Package openai provides an FAQ generator adapter using the OpenAI API.
package openai

import (
	"context"
	"fmt"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/custodia-labs/faqgen-core/adapters/driven/generation"
	"github.com/custodia-labs/faqgen-core/core/domain"
	"github.com/custodia-labs/faqgen-core/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.Generator = (*Generator)(nil)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// Config holds configuration for the OpenAI generator.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL overrides the API base URL (empty uses the OpenAI default).
	BaseURL string

	// Model is the model to use (default: gpt-4o-mini).
	Model string

	// Temperature controls sampling randomness (0 uses the API default).
	Temperature float64

	// MaxTokens caps the response length (0 uses the API default).
	MaxTokens int

	// RequestsPerSecond throttles outgoing requests (0 disables throttling).
	RequestsPerSecond float64
}

// Generator produces FAQ candidates using the OpenAI chat completions API.
type Generator struct {
	client      *gopenai.Client
	model       string
	temperature float64
	maxTokens   int
	throttle    *generation.Throttle
}

// NewGenerator creates a new OpenAI generator.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	clientCfg := gopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Generator{
		client:      gopenai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		throttle:    generation.NewThrottle(cfg.RequestsPerSecond),
	}, nil
}

// Generate produces candidate FAQ pairs for a single chunk.
func (g *Generator) Generate(ctx context.Context, chunk domain.Chunk, params driven.GenerationParams) ([]domain.Candidate, error) {
	if err := g.throttle.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}

	model := g.model
	if params.Model != "" {
		model = params.Model
	}
	maxTokens := g.maxTokens
	if params.MaxTokens > 0 {
		maxTokens = params.MaxTokens
	}
	temperature := g.temperature
	if params.Temperature > 0 {
		temperature = params.Temperature
	}

	req := gopenai.ChatCompletionRequest{
		Model: model,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: generation.SystemPrompt},
			{Role: gopenai.ChatMessageRoleUser, Content: generation.BuildPrompt(chunk.Text, params.MaxFAQsPerChunk)},
		},
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: create chat completion: %w", domain.ErrGeneration, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai: chat completion returned no choices", domain.ErrGeneration)
	}

	return generation.ParseCandidates(resp.Choices[0].Message.Content)
}

// ModelName returns the name of the model being used.
func (g *Generator) ModelName() string {
	return g.model
}

// Ping validates the service is reachable by listing available models.
// This is a lightweight check that validates the API key without running inference.
func (g *Generator) Ping(ctx context.Context) error {
	if _, err := g.client.ListModels(ctx); err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	return nil
}

// Close releases resources.
func (g *Generator) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
