package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPipelineConfig_IsValid(t *testing.T) {
	cfg := DefaultPipelineConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultMaxChunkChars, cfg.MaxChunkChars)
	assert.Equal(t, DefaultOverlapChars, cfg.OverlapChars)
	assert.Equal(t, DefaultMaxFAQsPerChunk, cfg.MaxFAQsPerChunk)
	assert.Equal(t, DefaultSimilarityThreshold, cfg.SimilarityThreshold)
	assert.True(t, cfg.RequireQuestionMark)
}

func TestPipelineConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PipelineConfig)
	}{
		{name: "zero max chunk chars", mutate: func(c *PipelineConfig) { c.MaxChunkChars = 0 }},
		{name: "negative max chunk chars", mutate: func(c *PipelineConfig) { c.MaxChunkChars = -10 }},
		{name: "zero overlap", mutate: func(c *PipelineConfig) { c.OverlapChars = 0 }},
		{name: "overlap equals max", mutate: func(c *PipelineConfig) { c.OverlapChars = c.MaxChunkChars }},
		{name: "zero faqs per chunk", mutate: func(c *PipelineConfig) { c.MaxFAQsPerChunk = 0 }},
		{name: "zero similarity threshold", mutate: func(c *PipelineConfig) { c.SimilarityThreshold = 0 }},
		{name: "similarity threshold above one", mutate: func(c *PipelineConfig) { c.SimilarityThreshold = 1.5 }},
		{name: "negative answer merge threshold", mutate: func(c *PipelineConfig) { c.AnswerMergeThreshold = -0.1 }},
		{name: "answer merge threshold above one", mutate: func(c *PipelineConfig) { c.AnswerMergeThreshold = 1.1 }},
		{name: "negative max faqs", mutate: func(c *PipelineConfig) { c.MaxFAQs = -1 }},
		{name: "zero concurrency", mutate: func(c *PipelineConfig) { c.GenerationConcurrency = 0 }},
		{name: "negative min question runes", mutate: func(c *PipelineConfig) { c.MinQuestionRunes = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPipelineConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestPipelineConfig_Validate_ZeroMaxFAQsMeansNoCap(t *testing.T) {
	cfg := DefaultPipelineConfig()
	cfg.MaxFAQs = 0

	assert.NoError(t, cfg.Validate())
}
