package domain

// Document represents normalised source text ready for FAQ generation.
// It is the canonical representation handed over by an external parser:
// whitespace normalised, control characters stripped. Created once at
// ingestion and never mutated.
type Document struct {
	// SourceID identifies where the text came from (file name, URL, etc).
	SourceID string `json:"source_id"`

	// Content is the full normalised text.
	Content string `json:"content"`

	// Metadata contains parser-supplied key-value pairs.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Length returns the content length in bytes.
func (d Document) Length() int {
	return len(d.Content)
}

// Chunk is a bounded slice of a document with optional leading overlap
// carried over from the previous chunk. Chunks are immutable once produced.
type Chunk struct {
	// Index is the ordinal position within the document, starting at 0.
	Index int `json:"index"`

	// Text is the chunk content sent to the generator. It begins with
	// OverlapWithPrev bytes copied verbatim from the end of the previous
	// chunk's text, followed by this chunk's own content.
	Text string `json:"text"`

	// StartOffset is the byte offset of this chunk's own content in the
	// source document. The overlap prefix is excluded from the span.
	StartOffset int `json:"start_offset"`

	// EndOffset is the byte offset one past this chunk's own content.
	EndOffset int `json:"end_offset"`

	// OverlapWithPrev is the length of the overlap prefix in bytes.
	// Always 0 for the first chunk.
	OverlapWithPrev int `json:"overlap_with_prev"`

	// HardSplit marks a chunk whose boundary was forced at a raw character
	// position because no paragraph or sentence boundary fit the limit.
	// Such splits are low quality and worth surfacing in diagnostics.
	HardSplit bool `json:"hard_split,omitempty"`
}

// NewContent returns the chunk's own content without the overlap prefix.
func (c Chunk) NewContent() string {
	if c.OverlapWithPrev >= len(c.Text) {
		return ""
	}
	return c.Text[c.OverlapWithPrev:]
}

// ChunkStats summarises a chunked document.
type ChunkStats struct {
	// TotalChunks is the number of chunks produced.
	TotalChunks int `json:"total_chunks"`

	// TotalChars is the combined length of all chunk content (overlap included).
	TotalChars int `json:"total_chars"`

	// AvgChars is the mean chunk length.
	AvgChars float64 `json:"avg_chars"`

	// MinChars is the shortest chunk length.
	MinChars int `json:"min_chars"`

	// MaxChars is the longest chunk length.
	MaxChars int `json:"max_chars"`

	// HardSplits is the number of chunks produced by forced character splits.
	HardSplits int `json:"hard_splits"`
}
