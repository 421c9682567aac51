package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faqgen-core/core/domain"
)

func TestTokenSimilarity_Score(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "How does sync work?", b: "How does sync work?", want: 1},
		{name: "case and punctuation ignored", a: "How does SYNC work?", b: "how does sync work", want: 1},
		{name: "disjoint", a: "alpha beta", b: "gamma delta", want: 0},
		{name: "partial overlap", a: "alpha beta gamma", b: "beta gamma delta", want: 0.5},
		{name: "empty side", a: "", b: "alpha", want: 0},
		{name: "both empty", a: "", b: "", want: 0},
	}

	sim := NewTokenSimilarity()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := sim.Score(context.Background(), tt.a, tt.b)

			require.NoError(t, err)
			assert.InDelta(t, tt.want, score, 0.001)
		})
	}
}

func TestTokenSimilarity_Symmetric(t *testing.T) {
	sim := NewTokenSimilarity()

	ab, err := sim.Score(context.Background(), "what is the retention period", "how long is data retained")
	require.NoError(t, err)
	ba, err := sim.Score(context.Background(), "how long is data retained", "what is the retention period")
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

// mockEmbedder is a test double for driven.EmbeddingService.
type mockEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := m.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = m.vectors[text]
	}
	return out, nil
}

func (m *mockEmbedder) Dimensions() int              { return 3 }
func (m *mockEmbedder) ModelName() string            { return "mock-embed" }
func (m *mockEmbedder) Ping(_ context.Context) error { return nil }
func (m *mockEmbedder) Close() error                 { return nil }

func TestNewEmbeddingSimilarity_NilService(t *testing.T) {
	_, err := NewEmbeddingSimilarity(nil)

	assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
}

func TestEmbeddingSimilarity_Score(t *testing.T) {
	embedder := &mockEmbedder{vectors: map[string][]float32{
		"a": {1, 0, 0},
		"b": {1, 0, 0},
		"c": {-1, 0, 0},
		"d": {0, 1, 0},
	}}
	sim, err := NewEmbeddingSimilarity(embedder)
	require.NoError(t, err)

	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical vectors", a: "a", b: "b", want: 1},
		{name: "opposite vectors", a: "a", b: "c", want: 0},
		{name: "orthogonal vectors", a: "a", b: "d", want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := sim.Score(context.Background(), tt.a, tt.b)

			require.NoError(t, err)
			assert.InDelta(t, tt.want, score, 0.001)
		})
	}
}

func TestEmbeddingSimilarity_ErrorPropagates(t *testing.T) {
	embedder := &mockEmbedder{err: errors.New("quota exceeded")}
	sim, err := NewEmbeddingSimilarity(embedder)
	require.NoError(t, err)

	_, err = sim.Score(context.Background(), "a", "b")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestEmbeddingSimilarity_Name(t *testing.T) {
	sim, err := NewEmbeddingSimilarity(&mockEmbedder{})
	require.NoError(t, err)

	assert.Equal(t, "embedding-cosine", sim.Name())
	assert.Equal(t, "token-jaccard", NewTokenSimilarity().Name())
}
