package config

const (
	defaultAPIListen = ":8080"

	defaultEmbeddingProvider = "ollama"
	defaultEmbeddingTarget   = "http://localhost:11434"
	defaultEmbeddingModel    = "nomic-embed-text"
	defaultEmbeddingWorkers  = 3

	defaultChatProvider = "ollama"
	defaultChatModel    = "llama3.2"

	defaultSearchTopK     = 4
	defaultSearchMinScore = 0.6

	defaultRateLimitMax    = 20
	defaultRateLimitWindow = 60
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		Embedding: EmbeddingConfig{
			Provider: defaultEmbeddingProvider,
			Target:   defaultEmbeddingTarget,
			Model:    defaultEmbeddingModel,
			Workers:  defaultEmbeddingWorkers,
		},
		Chat: ChatConfig{
			Provider: defaultChatProvider,
			Model:    defaultChatModel,
		},
		Search: SearchConfig{
			TopK:     defaultSearchTopK,
			MinScore: defaultSearchMinScore,
		},
		RateLimit: RateLimitConfig{
			Max:           defaultRateLimitMax,
			WindowSeconds: defaultRateLimitWindow,
		},
	}
}
