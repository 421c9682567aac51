package domain

import "fmt"

// Default pipeline parameters.
const (
	// DefaultMaxChunkChars is the default chunk size limit in characters.
	DefaultMaxChunkChars = 2000

	// DefaultOverlapChars is the default trailing context carried into the
	// next chunk.
	DefaultOverlapChars = 200

	// DefaultMaxFAQsPerChunk is the default number of pairs requested from
	// the generator per chunk.
	DefaultMaxFAQsPerChunk = 3

	// DefaultSimilarityThreshold is the default question-similarity
	// threshold for clustering near-duplicates.
	DefaultSimilarityThreshold = 0.85

	// DefaultAnswerMergeThreshold is the stricter threshold below which
	// two answers in a cluster are considered substantially different and
	// both kept.
	DefaultAnswerMergeThreshold = 0.5

	// DefaultGenerationConcurrency is the default worker pool size for
	// generation calls.
	DefaultGenerationConcurrency = 4

	// DefaultMinQuestionRunes is the default minimum question length.
	DefaultMinQuestionRunes = 12
)

// PipelineConfig holds the caller-supplied pipeline parameters.
// The zero value is not usable; start from DefaultPipelineConfig.
type PipelineConfig struct {
	// MaxChunkChars is the chunk size limit in characters.
	MaxChunkChars int `json:"max_chunk_chars" toml:"max_chunk_chars"`

	// OverlapChars is the trailing context length carried into the next
	// chunk. Must satisfy 0 < OverlapChars < MaxChunkChars.
	OverlapChars int `json:"overlap_chars" toml:"overlap_chars"`

	// MaxFAQsPerChunk is how many pairs to request per chunk.
	MaxFAQsPerChunk int `json:"max_faqs_per_chunk" toml:"max_faqs_per_chunk"`

	// SimilarityThreshold joins two candidates into one cluster when their
	// question similarity meets it. Range (0,1].
	SimilarityThreshold float64 `json:"similarity_threshold" toml:"similarity_threshold"`

	// AnswerMergeThreshold decides when a cluster member's answer is
	// different enough from the representative's to be kept alongside it.
	// Range [0,1]; must not exceed SimilarityThreshold.
	AnswerMergeThreshold float64 `json:"answer_merge_threshold" toml:"answer_merge_threshold"`

	// MaxFAQs caps the final entry count. Zero means no cap. Applied after
	// merging, never influencing which clusters form.
	MaxFAQs int `json:"max_faqs" toml:"max_faqs"`

	// GenerationConcurrency bounds the number of in-flight generation
	// calls.
	GenerationConcurrency int `json:"generation_concurrency" toml:"generation_concurrency"`

	// RequireQuestionMark rejects questions without a terminal question
	// mark as malformed.
	RequireQuestionMark bool `json:"require_question_mark" toml:"require_question_mark"`

	// MinQuestionRunes is the minimum question length in runes.
	MinQuestionRunes int `json:"min_question_runes" toml:"min_question_runes"`
}

// DefaultPipelineConfig returns the default pipeline parameters.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		MaxChunkChars:         DefaultMaxChunkChars,
		OverlapChars:          DefaultOverlapChars,
		MaxFAQsPerChunk:       DefaultMaxFAQsPerChunk,
		SimilarityThreshold:   DefaultSimilarityThreshold,
		AnswerMergeThreshold:  DefaultAnswerMergeThreshold,
		GenerationConcurrency: DefaultGenerationConcurrency,
		RequireQuestionMark:   true,
		MinQuestionRunes:      DefaultMinQuestionRunes,
	}
}

// Validate checks the configuration. A non-nil error wraps ErrInvalidConfig
// and aborts a run before any work is done.
func (c PipelineConfig) Validate() error {
	if c.MaxChunkChars <= 0 {
		return fmt.Errorf("%w: max_chunk_chars must be positive, got %d", ErrInvalidConfig, c.MaxChunkChars)
	}
	if c.OverlapChars <= 0 || c.OverlapChars >= c.MaxChunkChars {
		return fmt.Errorf("%w: overlap_chars must satisfy 0 < overlap < max_chunk_chars, got %d",
			ErrInvalidConfig, c.OverlapChars)
	}
	if c.MaxFAQsPerChunk <= 0 {
		return fmt.Errorf("%w: max_faqs_per_chunk must be positive, got %d", ErrInvalidConfig, c.MaxFAQsPerChunk)
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("%w: similarity_threshold must be in (0,1], got %g",
			ErrInvalidConfig, c.SimilarityThreshold)
	}
	if c.AnswerMergeThreshold < 0 || c.AnswerMergeThreshold > 1 {
		return fmt.Errorf("%w: answer_merge_threshold must be in [0,1], got %g",
			ErrInvalidConfig, c.AnswerMergeThreshold)
	}
	if c.MaxFAQs < 0 {
		return fmt.Errorf("%w: max_faqs must not be negative, got %d", ErrInvalidConfig, c.MaxFAQs)
	}
	if c.GenerationConcurrency <= 0 {
		return fmt.Errorf("%w: generation_concurrency must be positive, got %d",
			ErrInvalidConfig, c.GenerationConcurrency)
	}
	if c.MinQuestionRunes < 0 {
		return fmt.Errorf("%w: min_question_runes must not be negative, got %d",
			ErrInvalidConfig, c.MinQuestionRunes)
	}
	return nil
}
