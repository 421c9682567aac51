package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/custodia-labs/faqgen-core/core/domain"
	"github.com/custodia-labs/faqgen-core/internal/logger"
)

// Chunker splits normalised text into overlapping windows sized for the
// model's context window. Splitting prefers paragraph boundaries, falls
// back to sentence boundaries for oversized paragraphs, and hard-splits at
// the character limit as a last resort.
//
// Chunking is a pure function of the input text and parameters: the same
// document always produces the same chunks.
type Chunker struct {
	maxChunkChars int
	overlapChars  int
}

// NewChunker creates a chunker. The parameters must satisfy
// 0 < overlapChars < maxChunkChars; anything else wraps
// domain.ErrInvalidConfig.
func NewChunker(maxChunkChars, overlapChars int) (*Chunker, error) {
	if maxChunkChars <= 0 {
		return nil, fmt.Errorf("%w: max_chunk_chars must be positive, got %d",
			domain.ErrInvalidConfig, maxChunkChars)
	}
	if overlapChars <= 0 || overlapChars >= maxChunkChars {
		return nil, fmt.Errorf("%w: overlap_chars must satisfy 0 < overlap < max_chunk_chars, got %d",
			domain.ErrInvalidConfig, overlapChars)
	}
	return &Chunker{
		maxChunkChars: maxChunkChars,
		overlapChars:  overlapChars,
	}, nil
}

// Chunk splits text into an ordered sequence of chunks. The union of
// [StartOffset, EndOffset) spans covers the whole text with no gaps; the
// overlap prefix is carried in Text only. Empty text yields zero chunks.
func (c *Chunker) Chunk(text string) []domain.Chunk {
	if text == "" {
		return nil
	}

	paragraphs := paragraphBoundaries(text)
	sentences := sentenceBoundaries(text)

	var chunks []domain.Chunk
	start := 0
	prevText := ""

	for start < len(text) {
		end, hard := c.splitPoint(text, start, paragraphs, sentences)

		overlap := ""
		if len(chunks) > 0 {
			overlap = tail(prevText, c.overlapChars)
		}

		chunk := domain.Chunk{
			Index:           len(chunks),
			Text:            overlap + text[start:end],
			StartOffset:     start,
			EndOffset:       end,
			OverlapWithPrev: len(overlap),
			HardSplit:       hard,
		}
		if hard {
			logger.Warn("Hard split at offset %d: no paragraph or sentence boundary within %d chars",
				end, c.maxChunkChars)
		}

		chunks = append(chunks, chunk)
		prevText = chunk.Text
		start = end
	}

	logger.Debug("Chunked %d chars into %d chunks", len(text), len(chunks))
	return chunks
}

// Stats summarises a chunk sequence.
func (c *Chunker) Stats(chunks []domain.Chunk) domain.ChunkStats {
	stats := domain.ChunkStats{TotalChunks: len(chunks)}
	if len(chunks) == 0 {
		return stats
	}

	stats.MinChars = len(chunks[0].Text)
	for _, chunk := range chunks {
		n := len(chunk.Text)
		stats.TotalChars += n
		if n < stats.MinChars {
			stats.MinChars = n
		}
		if n > stats.MaxChars {
			stats.MaxChars = n
		}
		if chunk.HardSplit {
			stats.HardSplits++
		}
	}
	stats.AvgChars = float64(stats.TotalChars) / float64(len(chunks))
	return stats
}

// splitPoint finds where the chunk starting at start should end.
// Preference order: the furthest paragraph boundary within the limit,
// then the furthest sentence boundary, then a raw character split.
func (c *Chunker) splitPoint(text string, start int, paragraphs, sentences []int) (end int, hard bool) {
	limit := start + c.maxChunkChars
	if limit >= len(text) {
		return len(text), false
	}

	if b := lastBoundaryWithin(paragraphs, start, limit); b > 0 {
		return b, false
	}
	if b := lastBoundaryWithin(sentences, start, limit); b > 0 {
		return b, false
	}

	// Last resort: split at the character limit, backing off so a
	// multi-byte rune is never cut in half.
	for limit > start+1 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return limit, true
}

// lastBoundaryWithin returns the largest boundary b with start < b <= limit,
// or 0 when none exists. Boundaries are sorted ascending.
func lastBoundaryWithin(boundaries []int, start, limit int) int {
	best := 0
	for _, b := range boundaries {
		if b > limit {
			break
		}
		if b > start {
			best = b
		}
	}
	return best
}

// paragraphBoundaries returns the offsets where a new paragraph begins:
// after each blank-line run, and at each heading line. Offset 0 is never
// included.
func paragraphBoundaries(text string) []int {
	var boundaries []int

	i := 0
	for i < len(text) {
		if text[i] != '\n' {
			i++
			continue
		}

		// Heading marker on the next line starts a new paragraph even
		// without a blank line.
		if i+1 < len(text) && text[i+1] == '#' {
			boundaries = append(boundaries, i+1)
			i++
			continue
		}

		// Look for a blank-line run: newline, optional spaces/tabs,
		// another newline.
		j := i + 1
		for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
			j++
		}
		if j < len(text) && text[j] == '\n' {
			// Consume the rest of the whitespace run.
			for j < len(text) && isSpace(text[j]) {
				j++
			}
			if j < len(text) {
				boundaries = append(boundaries, j)
			}
			i = j
			continue
		}
		i++
	}

	return boundaries
}

// sentenceBoundaries returns the offsets where a new sentence begins: the
// first non-whitespace position after a terminator (./?/!) followed by
// whitespace.
func sentenceBoundaries(text string) []int {
	var boundaries []int

	for i := 0; i < len(text); i++ {
		if !isTerminator(text[i]) {
			continue
		}
		j := i + 1
		if j >= len(text) || !isSpace(text[j]) {
			continue
		}
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		if j < len(text) {
			boundaries = append(boundaries, j)
		}
	}

	return boundaries
}

func isTerminator(b byte) bool {
	return b == '.' || b == '?' || b == '!'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// tail returns the last n bytes of s, backed off to a rune boundary so the
// overlap never starts mid-rune.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	start := len(s) - n
	for start < len(s) && !utf8.RuneStart(s[start]) {
		start++
	}
	return s[start:]
}
