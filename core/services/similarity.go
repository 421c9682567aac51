package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/custodia-labs/faqgen-core/core/domain"
	"github.com/custodia-labs/faqgen-core/core/ports/driven"
)

// Ensure implementations satisfy the port.
var (
	_ driven.Similarity = (*TokenSimilarity)(nil)
	_ driven.Similarity = (*EmbeddingSimilarity)(nil)
)

// TokenSimilarity scores questions by Jaccard overlap of their normalised
// token sets. It is the default strategy: symmetric, deterministic, range
// [0,1], and needs no external service.
type TokenSimilarity struct{}

// NewTokenSimilarity creates the lexical similarity strategy.
func NewTokenSimilarity() *TokenSimilarity {
	return &TokenSimilarity{}
}

// Score returns the Jaccard similarity of the two texts' token sets.
func (TokenSimilarity) Score(_ context.Context, a, b string) (float64, error) {
	return jaccard(normaliseTokens(a), normaliseTokens(b)), nil
}

// Name returns the strategy name.
func (TokenSimilarity) Name() string {
	return "token-jaccard"
}

// EmbeddingSimilarity scores questions by cosine similarity of their
// embeddings. The embedding service supplies the vectors; scores are
// clamped into [0,1].
type EmbeddingSimilarity struct {
	embedder driven.EmbeddingService
}

// NewEmbeddingSimilarity creates an embedding-backed similarity strategy.
// Returns domain.ErrEmbeddingUnavailable when the service is nil.
func NewEmbeddingSimilarity(embedder driven.EmbeddingService) (*EmbeddingSimilarity, error) {
	if embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	return &EmbeddingSimilarity{embedder: embedder}, nil
}

// Score embeds both texts and returns their cosine similarity mapped into
// [0,1].
func (s *EmbeddingSimilarity) Score(ctx context.Context, a, b string) (float64, error) {
	vectors, err := s.embedder.EmbedBatch(ctx, []string{a, b})
	if err != nil {
		return 0, fmt.Errorf("embed for similarity: %w", err)
	}
	if len(vectors) != 2 {
		return 0, fmt.Errorf("embed for similarity: expected 2 vectors, got %d", len(vectors))
	}

	cos := cosine(vectors[0], vectors[1])

	// Cosine is in [-1,1]; the port contract requires [0,1].
	score := (cos + 1) / 2
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, nil
}

// Name returns the strategy name.
func (s *EmbeddingSimilarity) Name() string {
	return "embedding-cosine"
}

// cosine returns the cosine similarity of two vectors, 0 when either has
// zero magnitude or the lengths differ.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// normaliseTokens lowercases the text, strips punctuation, and returns the
// distinct tokens.
func normaliseTokens(text string) map[string]struct{} {
	tokens := make(map[string]struct{})

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, field := range fields {
		tokens[field] = struct{}{}
	}

	return tokens
}

// jaccard returns intersection-over-union, 0 when either set is empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}
