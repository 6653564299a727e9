package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const configName = "config"

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads config.toml (from
// configDir if given, else the working directory then ~/.folio), and
// binds environment variables with the FOLIO_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound by the command)
//  2. Environment variables (FOLIO_API_LISTEN, FOLIO_CHAT_API_KEY, ...)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType("toml")

	if configDir != "" {
		v.AddConfigPath(configDir)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".folio"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source
// of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("api.listen", d.API.Listen)

	v.SetDefault("embedding.provider", d.Embedding.Provider)
	v.SetDefault("embedding.target", d.Embedding.Target)
	v.SetDefault("embedding.model", d.Embedding.Model)
	v.SetDefault("embedding.api_key", d.Embedding.APIKey)
	v.SetDefault("embedding.workers", d.Embedding.Workers)

	v.SetDefault("chat.provider", d.Chat.Provider)
	v.SetDefault("chat.target", d.Chat.Target)
	v.SetDefault("chat.model", d.Chat.Model)
	v.SetDefault("chat.api_key", d.Chat.APIKey)

	v.SetDefault("content.dir", d.Content.Dir)
	v.SetDefault("content.watch", d.Content.Watch)

	v.SetDefault("search.top_k", d.Search.TopK)
	v.SetDefault("search.min_score", d.Search.MinScore)

	v.SetDefault("ratelimit.max", d.RateLimit.Max)
	v.SetDefault("ratelimit.window_seconds", d.RateLimit.WindowSeconds)
}

// FromViper materializes a Config from the resolved viper state.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		API: APIConfig{
			Listen: v.GetString("api.listen"),
		},
		Embedding: EmbeddingConfig{
			Provider: v.GetString("embedding.provider"),
			Target:   v.GetString("embedding.target"),
			Model:    v.GetString("embedding.model"),
			APIKey:   v.GetString("embedding.api_key"),
			Workers:  v.GetInt("embedding.workers"),
		},
		Chat: ChatConfig{
			Provider: v.GetString("chat.provider"),
			Target:   v.GetString("chat.target"),
			Model:    v.GetString("chat.model"),
			APIKey:   v.GetString("chat.api_key"),
		},
		Content: ContentConfig{
			Dir:   v.GetString("content.dir"),
			Watch: v.GetBool("content.watch"),
		},
		Search: SearchConfig{
			TopK:     v.GetInt("search.top_k"),
			MinScore: v.GetFloat64("search.min_score"),
		},
		RateLimit: RateLimitConfig{
			Max:           v.GetInt("ratelimit.max"),
			WindowSeconds: v.GetInt("ratelimit.window_seconds"),
		},
	}
}
