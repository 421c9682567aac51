// Package static provides a deterministic in-process FAQ generator.
//
// It performs no network I/O, which makes it suitable for tests, offline
// smoke runs, and wiring checks. Candidates can be pre-seeded per chunk
// index; unseeded chunks get a derived question/answer pair.
package static

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/faqgen-core/core/domain"
	"github.com/custodia-labs/faqgen-core/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.Generator = (*Generator)(nil)

// modelName identifies this generator in run output.
const modelName = "static"

// Generator returns canned or derived candidates without calling a model.
type Generator struct {
	mu        sync.RWMutex
	responses map[int][]domain.Candidate
	err       error
	calls     int
}

// NewGenerator creates an empty static generator. All chunks get derived
// candidates until responses are seeded.
func NewGenerator() *Generator {
	return &Generator{
		responses: make(map[int][]domain.Candidate),
	}
}

// Seed registers canned candidates for a chunk index, replacing any
// previous seed for that index.
func (g *Generator) Seed(chunkIndex int, candidates []domain.Candidate) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses[chunkIndex] = candidates
}

// FailWith makes every subsequent Generate call return err. Passing nil
// restores normal operation.
func (g *Generator) FailWith(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.err = err
}

// Calls reports how many Generate calls have been made.
func (g *Generator) Calls() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.calls
}

// Generate returns the seeded candidates for the chunk, or a derived pair
// when none are seeded.
func (g *Generator) Generate(ctx context.Context, chunk domain.Chunk, params driven.GenerationParams) ([]domain.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}

	g.mu.Lock()
	g.calls++
	seeded, ok := g.responses[chunk.Index]
	err := g.err
	g.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}

	if ok {
		out := make([]domain.Candidate, len(seeded))
		copy(out, seeded)
		return out, nil
	}

	return derive(chunk, params.MaxFAQsPerChunk), nil
}

// derive builds a single question/answer pair from the chunk text.
func derive(chunk domain.Chunk, maxFAQs int) []domain.Candidate {
	if maxFAQs < 1 {
		maxFAQs = 1
	}

	text := strings.TrimSpace(chunk.NewContent())
	if text == "" {
		return nil
	}

	answer := firstSentence(text)
	return []domain.Candidate{
		{
			Question: fmt.Sprintf("What does section %d of the document explain?", chunk.Index+1),
			Answer:   answer,
		},
	}
}

// firstSentence returns text up to and including the first terminator,
// or the whole text when none is found.
func firstSentence(text string) string {
	for i, r := range text {
		if r == '.' || r == '?' || r == '!' {
			return text[:i+1]
		}
	}
	return text
}

// ModelName returns the name of the model being used.
func (g *Generator) ModelName() string {
	return modelName
}

// Ping always succeeds; there is no remote service to reach.
func (g *Generator) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close releases resources.
func (g *Generator) Close() error {
	return nil
}
