// Package domain defines the core business entities for faqgen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: Normalised source text ready for chunking
//   - Chunk: A bounded, offset-tracked slice of a document
//   - Candidate: A question/answer pair proposed by a generator
//   - ScoredCandidate: A candidate after quality filtering
//   - FAQEntry: A final, deduplicated FAQ record
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any other faqgen package, any external dependency
package domain
