// Package api provides the HTTP API backing the portfolio site's
// chatbot and search features.
package api

import "time"

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g. ":8080")
	ListenAddr string

	// RateLimitMax is the number of chat requests allowed per client IP
	// within RateLimitWindow. Zero disables rate limiting.
	RateLimitMax int

	// RateLimitWindow is the sliding window for the chat rate limit.
	RateLimitWindow time.Duration
}
