package driving

import (
	"context"

	"github.com/custodia-labs/faqgen-core/core/domain"
)

// FAQService turns a normalised document into a deduplicated FAQ list.
type FAQService interface {
	// GenerateFAQ runs the full pipeline: chunk, generate, filter, merge.
	//
	// Returns domain.ErrEmptyDocument when the document yields zero
	// chunks. Per-chunk generation failures do not fail the run; they are
	// reported in the result summary. When ctx is cancelled mid-run, the
	// candidates collected so far are still filtered and merged into a
	// best-effort partial result.
	GenerateFAQ(ctx context.Context, doc domain.Document) (*domain.RunResult, error)

	// ChunkPreview splits the document without calling the generator.
	// Useful for inspecting chunk boundaries and cost estimation.
	ChunkPreview(doc domain.Document) ([]domain.Chunk, domain.ChunkStats, error)
}
