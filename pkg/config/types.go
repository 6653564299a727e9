// Package config holds the folio service configuration, loaded from
// config.toml, FOLIO_ environment variables, and CLI flags via viper.
package config

// Config represents the persistent folio configuration stored as
// config.toml. The TOML layout uses sections for logical grouping.
type Config struct {
	API       APIConfig       `toml:"api"`
	Embedding EmbeddingConfig `toml:"embedding"`
	Chat      ChatConfig      `toml:"chat"`
	Content   ContentConfig   `toml:"content"`
	Search    SearchConfig    `toml:"search"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
}

// APIConfig holds API server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	Provider string `toml:"provider,omitempty"`
	Target   string `toml:"target,omitempty"`
	Model    string `toml:"model,omitempty"`
	APIKey   string `toml:"api_key,omitempty"`
	Workers  int    `toml:"workers,omitempty"`
}

// ChatConfig holds language model provider settings for the assistant.
type ChatConfig struct {
	Provider string `toml:"provider,omitempty"`
	Target   string `toml:"target,omitempty"`
	Model    string `toml:"model,omitempty"`
	APIKey   string `toml:"api_key,omitempty"`
}

// ContentConfig holds portfolio content source settings.
type ContentConfig struct {
	// Dir is the directory holding projects.json / posts.json. Empty
	// serves the built-in catalog only.
	Dir string `toml:"dir,omitempty"`

	// Watch rebuilds the knowledge index when files in Dir change.
	Watch bool `toml:"watch,omitempty"`
}

// SearchConfig holds retrieval tuning for the chat layer.
type SearchConfig struct {
	TopK     int     `toml:"top_k,omitempty"`
	MinScore float64 `toml:"min_score,omitempty"`
}

// RateLimitConfig holds the per-IP chat rate limit.
type RateLimitConfig struct {
	Max           int `toml:"max,omitempty"`
	WindowSeconds int `toml:"window_seconds,omitempty"`
}
