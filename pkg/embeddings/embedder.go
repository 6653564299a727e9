// Package embeddings defines the embedding service contract the knowledge
// index depends on. Any hosted or local model satisfying Embedder is
// interchangeable; the only assumption is that one configured embedder
// produces vectors of a fixed, consistent length.
package embeddings

import "context"

// Embedder provides text embedding capabilities.
type Embedder interface {
	// Embed converts text into a vector embedding. Text must be non-empty
	// after trimming; implementations fail fast on empty input rather
	// than returning a degenerate vector.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Close releases any resources held by the embedder.
	Close() error
}
