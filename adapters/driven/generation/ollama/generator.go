// Package ollama provides an FAQ generator adapter using a local Ollama server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/faqgen-core/adapters/driven/generation"
	"github.com/custodia-labs/faqgen-core/core/domain"
	"github.com/custodia-labs/faqgen-core/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.Generator = (*Generator)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the Ollama generator.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the model to use (default: llama3.2).
	Model string

	// Temperature controls sampling randomness (0 uses the server default).
	Temperature float64

	// MaxTokens caps the response length (0 uses the server default).
	MaxTokens int

	// RequestsPerSecond throttles outgoing requests (0 disables throttling).
	RequestsPerSecond float64

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Generator produces FAQ candidates using the Ollama /api/chat API.
type Generator struct {
	client      *http.Client
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	throttle    *generation.Throttle
}

// chatRequest is the Ollama /api/chat request format.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  *options      `json:"options,omitempty"`
}

// chatMessage is the Ollama chat message format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// options holds generation parameters.
type options struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// chatResponse is the Ollama /api/chat response format.
type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
}

// NewGenerator creates a new Ollama generator.
func NewGenerator(cfg Config) *Generator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Generator{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		throttle:    generation.NewThrottle(cfg.RequestsPerSecond),
	}
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

	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: generation.SystemPrompt},
			{Role: "user", Content: generation.BuildPrompt(chunk.Text, params.MaxFAQsPerChunk)},
		},
		Stream: false,
	}

	if maxTokens > 0 || temperature > 0 {
		reqBody.Options = &options{
			NumPredict:  maxTokens,
			Temperature: temperature,
		}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %w", domain.ErrGeneration, err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.baseURL+"/api/chat",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", domain.ErrGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %w", domain.ErrGeneration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: ollama error (status %d): failed to read response", domain.ErrGeneration, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: ollama error (status %d): %s", domain.ErrGeneration, resp.StatusCode, string(body))
	}

	var chResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chResp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrGeneration, err)
	}

	return generation.ParseCandidates(chResp.Message.Content)
}

// ModelName returns the name of the model being used.
func (g *Generator) ModelName() string {
	return g.model
}

// Ping validates the service is reachable by checking the /api/tags endpoint.
func (g *Generator) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return fmt.Errorf("ollama: failed to create ping request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("ollama: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("ollama: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Close releases resources.
func (g *Generator) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
