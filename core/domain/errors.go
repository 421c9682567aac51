package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidConfig indicates invalid pipeline parameters.
	// A run aborts before any work is done.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyDocument indicates the document produced zero chunks.
	// This is a distinct terminal state, not a crash: it is legitimate
	// for trivially short input.
	ErrEmptyDocument = errors.New("empty document")

	// ErrGeneration indicates a generation call failed (network, auth, or
	// model failure). Recoverable per chunk: the chunk contributes zero
	// candidates and the run continues.
	ErrGeneration = errors.New("generation failed")

	// ErrParse indicates a generator response was not in the expected
	// question/answer format. Recoverable per chunk, like ErrGeneration.
	ErrParse = errors.New("response parse failed")

	// ErrUnsupportedProvider indicates an unknown generation provider.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrGeneratorUnavailable indicates no generator is configured.
	ErrGeneratorUnavailable = errors.New("generator unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Embedding-based similarity cannot be used without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
