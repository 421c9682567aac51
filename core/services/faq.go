package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/faqgen-core/core/domain"
	"github.com/custodia-labs/faqgen-core/core/ports/driven"
	"github.com/custodia-labs/faqgen-core/core/ports/driving"
	"github.com/custodia-labs/faqgen-core/internal/logger"
)

// Ensure FAQService implements the interface.
var _ driving.FAQService = (*FAQService)(nil)

// FAQService runs the full pipeline: chunk, generate, filter, merge.
// Chunker, Filter, and Merger are pure transforms; the Collector owns the
// only suspension point (the generation calls).
type FAQService struct {
	cfg       domain.PipelineConfig
	chunker   *Chunker
	collector *Collector
	filter    *Filter
	merger    *Merger
	generator driven.Generator
}

// NewFAQService creates the pipeline service. The similarity strategy is
// optional; when nil the lexical token strategy is used. Invalid
// configuration is rejected here, before any work is done.
func NewFAQService(
	generator driven.Generator,
	similarity driven.Similarity,
	cfg domain.PipelineConfig,
) (*FAQService, error) {
	if generator == nil {
		return nil, domain.ErrGeneratorUnavailable
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if similarity == nil {
		similarity = NewTokenSimilarity()
	}

	chunker, err := NewChunker(cfg.MaxChunkChars, cfg.OverlapChars)
	if err != nil {
		return nil, err
	}

	return &FAQService{
		cfg:       cfg,
		chunker:   chunker,
		collector: NewCollector(generator, cfg.GenerationConcurrency),
		filter:    NewFilter(cfg),
		merger:    NewMerger(similarity, cfg),
		generator: generator,
	}, nil
}

// GenerateFAQ turns a normalised document into a deduplicated FAQ list.
//
// Per-chunk generation failures reduce the candidate pool and are tallied
// in the summary; they never abort the run. Cancellation mid-run yields a
// best-effort partial result from the candidates collected so far.
// A document that yields zero chunks returns domain.ErrEmptyDocument.
func (s *FAQService) GenerateFAQ(ctx context.Context, doc domain.Document) (*domain.RunResult, error) {
	logger.Section("FAQ Generation")
	logger.Debug("Source: %s (%d chars)", doc.SourceID, doc.Length())

	chunks := s.chunker.Chunk(doc.Content)
	if len(chunks) == 0 {
		return nil, domain.ErrEmptyDocument
	}
	logger.Info("Chunked into %d chunks", len(chunks))

	params := driven.GenerationParams{
		MaxFAQsPerChunk: s.cfg.MaxFAQsPerChunk,
	}

	collected := s.collector.Collect(ctx, chunks, params)
	logger.Info("Generation: %d candidates from %d/%d chunks (%d failed)",
		len(collected.Candidates), collected.ChunksSucceeded, len(chunks), len(collected.Failures))

	scored := s.filter.Filter(collected.Candidates)

	var accepted []domain.ScoredCandidate
	var rejected []domain.ScoredCandidate
	rejectedByReason := make(map[domain.RejectReason]int)
	for _, sc := range scored {
		if sc.Accepted() {
			accepted = append(accepted, sc)
		} else {
			rejected = append(rejected, sc)
			rejectedByReason[sc.RejectReason]++
		}
	}
	logger.Info("Filter: %d accepted, %d rejected", len(accepted), len(rejected))

	entries, err := s.merger.Merge(ctx, accepted)
	if err != nil {
		return nil, fmt.Errorf("merge candidates: %w", err)
	}
	logger.Info("Merge: %d final entries", len(entries))

	summary := domain.RunSummary{
		ChunksTotal:         len(chunks),
		ChunksSucceeded:     collected.ChunksSucceeded,
		ChunksFailed:        len(collected.Failures),
		ChunkFailures:       collected.Failures,
		CandidatesGenerated: len(collected.Candidates),
		CandidatesRejected:  len(rejected),
		Cancelled:           collected.Cancelled,
	}
	if len(rejectedByReason) > 0 {
		summary.RejectedByReason = rejectedByReason
	}

	return &domain.RunResult{
		Entries:  entries,
		Rejected: rejected,
		Summary:  summary,
	}, nil
}

// ChunkPreview splits the document without calling the generator.
func (s *FAQService) ChunkPreview(doc domain.Document) ([]domain.Chunk, domain.ChunkStats, error) {
	chunks := s.chunker.Chunk(doc.Content)
	if len(chunks) == 0 {
		return nil, domain.ChunkStats{}, domain.ErrEmptyDocument
	}
	return chunks, s.chunker.Stats(chunks), nil
}
