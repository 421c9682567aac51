package domain

// FAQEntry is a final, deduplicated question/answer record. Entries are
// immutable and handed to an external formatter in ranked order.
type FAQEntry struct {
	// ID is the unique identifier for the entry.
	ID string `json:"id"`

	// Question is the representative question for the merged cluster.
	Question string `json:"question"`

	// Answer is the representative answer, possibly extended with
	// attributed material from other cluster members.
	Answer string `json:"answer"`

	// SourceChunks lists the distinct chunk indexes that contributed,
	// in ascending order.
	SourceChunks []int `json:"source_chunks"`

	// Confidence is the ranking score in [0,1], combining the
	// representative's quality score with cross-chunk corroboration.
	Confidence float64 `json:"confidence"`
}

// ChunkFailure records a chunk whose generation call failed.
// Failures are recoverable: the chunk simply contributes no candidates.
type ChunkFailure struct {
	// ChunkIndex is the index of the failed chunk.
	ChunkIndex int `json:"chunk_index"`

	// Err is the failure, wrapping ErrGeneration or ErrParse.
	Err error `json:"-"`
}

// RunSummary is the explicit accumulator threaded through the pipeline.
// It replaces ambient global state for progress and failure tallies.
type RunSummary struct {
	// ChunksTotal is the number of chunks the document was split into.
	ChunksTotal int `json:"chunks_total"`

	// ChunksSucceeded is the number of chunks that produced candidates.
	ChunksSucceeded int `json:"chunks_succeeded"`

	// ChunksFailed is the number of chunks whose generation call failed.
	ChunksFailed int `json:"chunks_failed"`

	// ChunkFailures records each failed chunk with its error.
	ChunkFailures []ChunkFailure `json:"chunk_failures,omitempty"`

	// CandidatesGenerated is the raw candidate count across all chunks.
	CandidatesGenerated int `json:"candidates_generated"`

	// CandidatesRejected is the number discarded by the quality filter.
	CandidatesRejected int `json:"candidates_rejected"`

	// RejectedByReason breaks rejections down by reason.
	RejectedByReason map[RejectReason]int `json:"rejected_by_reason,omitempty"`

	// Cancelled is true when the run was cut short and the entries are a
	// best-effort partial result.
	Cancelled bool `json:"cancelled,omitempty"`
}

// RunResult is the complete output of a pipeline run.
type RunResult struct {
	// Entries is the final ordered FAQ list.
	Entries []FAQEntry `json:"entries"`

	// Rejected retains filtered-out candidates for diagnostics.
	Rejected []ScoredCandidate `json:"rejected,omitempty"`

	// Summary reports end-of-run counters.
	Summary RunSummary `json:"summary"`
}
