// Package services implements the driving port interfaces.
// Services contain the core pipeline logic - chunking, candidate
// collection, quality filtering, and merging - and orchestrate calls to
// driven ports (adapters).
//
// Chunker, Filter, and Merger are pure, synchronous transforms over
// immutable inputs; only the Collector performs blocking I/O via the
// Generator port.
package services
