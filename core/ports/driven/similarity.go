package driven

import "context"

// Similarity scores how close two questions are. It is the pluggable
// strategy behind clustering: lexical token overlap by default, embedding
// cosine similarity when an EmbeddingService is configured.
//
// Implementations must be symmetric, deterministic, and return values in
// [0,1] regardless of strategy.
type Similarity interface {
	// Score returns the similarity of a and b in [0,1].
	Score(ctx context.Context, a, b string) (float64, error)

	// Name returns the strategy name for logging.
	Name() string
}
