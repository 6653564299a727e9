package knowledge

import "errors"

var (
	// ErrEmbedding is returned when an embedding service call fails.
	ErrEmbedding = errors.New("embedding failed")

	// ErrCorpusBuild is returned when building the portfolio corpus fails.
	// Corpus construction is all-or-nothing: a single failed item aborts
	// the whole build and no partial corpus is committed.
	ErrCorpusBuild = errors.New("corpus build failed")

	// ErrDimensionMismatch is returned when two vectors of different
	// lengths are compared, or a document's embedding does not match the
	// store's dimensionality. It signals mixed embedding models in one
	// store and is never masked.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrEmptyContent is returned when an embedding is requested for
	// empty or whitespace-only text.
	ErrEmptyContent = errors.New("content is empty")
)
