package services

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/faqgen-core/core/domain"
	"github.com/custodia-labs/faqgen-core/core/ports/driven"
	"github.com/custodia-labs/faqgen-core/internal/logger"
)

// Collector fans generation calls out over a bounded worker pool and
// reassembles the candidates in chunk-index order, so downstream filtering
// and merging are deterministic regardless of network timing.
//
// Generation is the pipeline's only externally-latent operation; chunks
// share no mutable state, so the calls are independent.
type Collector struct {
	generator   driven.Generator
	concurrency int
}

// NewCollector creates a collector. Concurrency below 1 is raised to 1.
func NewCollector(generator driven.Generator, concurrency int) *Collector {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Collector{
		generator:   generator,
		concurrency: concurrency,
	}
}

// CollectResult is the outcome of a collection pass.
type CollectResult struct {
	// Candidates are in chunk-index order, model order within a chunk.
	Candidates []domain.Candidate

	// Failures records chunks whose generation call failed.
	Failures []domain.ChunkFailure

	// ChunksSucceeded counts chunks that completed without error.
	ChunksSucceeded int

	// Cancelled is true when the context ended before all chunks ran.
	Cancelled bool
}

// chunkResult carries one chunk's generation outcome back to the join.
type chunkResult struct {
	chunkIndex int
	candidates []domain.Candidate
	err        error
}

// Collect generates candidates for every chunk and returns them in chunk
// order with provenance attached. Per-chunk failures never abort the
// collection. When ctx is cancelled, remaining chunks are abandoned and
// everything collected so far is still returned as a best-effort partial
// result.
func (c *Collector) Collect(
	ctx context.Context, chunks []domain.Chunk, params driven.GenerationParams,
) CollectResult {
	if len(chunks) == 0 {
		return CollectResult{}
	}

	jobs := make(chan domain.Chunk)
	// Buffered to the chunk count so workers never block on the join.
	results := make(chan chunkResult, len(chunks))

	var wg sync.WaitGroup
	workers := c.concurrency
	if workers > len(chunks) {
		workers = len(chunks)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for chunk := range jobs {
				cands, err := c.generator.Generate(ctx, chunk, params)
				results <- chunkResult{chunkIndex: chunk.Index, candidates: cands, err: err}
			}
		}()
	}

	// Dispatch until done or cancelled; abandoning dispatch on
	// cancellation keeps the already-collected results usable.
dispatch:
	for _, chunk := range chunks {
		select {
		case jobs <- chunk:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	var result CollectResult
	byChunk := make(map[int][]domain.Candidate, len(chunks))
	for res := range results {
		if res.err != nil {
			logger.Warn("Chunk %d generation failed: %v", res.chunkIndex, res.err)
			result.Failures = append(result.Failures, domain.ChunkFailure{
				ChunkIndex: res.chunkIndex,
				Err:        res.err,
			})
			continue
		}
		result.ChunksSucceeded++
		byChunk[res.chunkIndex] = res.candidates
	}
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].ChunkIndex < result.Failures[j].ChunkIndex
	})

	// Reassemble in chunk-index order, preserving the model's order
	// within each chunk, and attach provenance the adapter left unset.
	for _, chunk := range chunks {
		for _, cand := range byChunk[chunk.Index] {
			cand.SourceChunkIndex = chunk.Index
			if cand.ID == "" {
				cand.ID = uuid.New().String()
			}
			if cand.SpanStart == 0 && cand.SpanEnd == 0 {
				cand.SpanStart = chunk.StartOffset
				cand.SpanEnd = chunk.EndOffset
			}
			result.Candidates = append(result.Candidates, cand)
		}
	}

	result.Cancelled = ctx.Err() != nil
	if result.Cancelled {
		logger.Info("Collection cancelled: %d chunks completed, %d failed",
			result.ChunksSucceeded, len(result.Failures))
	}
	return result
}
