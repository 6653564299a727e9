// Package embeddingutils is the embeddings utility package
package embeddingutils

import (
	"fmt"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/embeddings"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/embeddings/ollama"
	"github.com/let-the-dreamers-rise/resume-sub000/pkg/embeddings/openai"
)

// NewEmbedderOpts selects and configures an embedding provider.
type NewEmbedderOpts struct {
	ProviderType string
	TargetURL    string
	Model        string
	APIKey       string
}

// NewEmbedder constructs the embedder named by ProviderType.
func NewEmbedder(o *NewEmbedderOpts) (embeddings.Embedder, error) {
	switch o.ProviderType {
	case "ollama":
		return ollama.NewEmbedder(ollama.Config{
			BaseURL: o.TargetURL,
			Model:   o.Model,
		})
	case "openai":
		return openai.NewEmbedder(openai.Config{
			BaseURL: o.TargetURL,
			Model:   o.Model,
			APIKey:  o.APIKey,
		})
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", o.ProviderType)
	}
}
