package driven

import (
	"context"

	"github.com/custodia-labs/faqgen-core/core/domain"
)

// Generator produces candidate question/answer pairs for a single chunk.
// It wraps the external LLM call: prompt construction, the network request,
// and response parsing all live behind this port.
//
// Errors must wrap domain.ErrGeneration (transport, auth, or model failure)
// or domain.ErrParse (response not in the expected question/answer shape).
// Both are recoverable per chunk: a failing chunk contributes zero
// candidates and is recorded as a partial failure, never aborting the run.
//
// Implementations may include:
//   - OpenAI (chat completions)
//   - Anthropic (messages API)
//   - Ollama (local models)
type Generator interface {
	// Generate proposes up to params.MaxFAQsPerChunk pairs for the chunk.
	// The returned candidates are in the order the model produced them.
	Generate(ctx context.Context, chunk domain.Chunk, params GenerationParams) ([]domain.Candidate, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup before committing to a run.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerationParams configures a single generation call.
type GenerationParams struct {
	// MaxFAQsPerChunk is how many pairs to request.
	MaxFAQsPerChunk int

	// Model overrides the adapter's configured model when non-empty.
	Model string

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// MaxTokens caps the response length. Zero uses the adapter default.
	MaxTokens int
}
