package logger

import (
	"io"
	"log/slog"
)

// Option configures the logger built by New.
type Option func(*config)

// WithDebug lowers the level to Debug. False leaves the level at Info.
func WithDebug(debug bool) Option {
	return func(c *config) {
		if debug {
			c.level = slog.LevelDebug
		}
	}
}

// WithJSON selects slog's JSON handler, used by the serve command for
// structured service logs.
func WithJSON(json bool) Option {
	return func(c *config) {
		c.json = json
	}
}

// WithPretty selects the charmbracelet handler for human-friendly
// terminal output, used by the ask command.
func WithPretty(pretty bool) Option {
	return func(c *config) {
		c.pretty = pretty
	}
}

// WithSource adds the source file and line to each record.
func WithSource(source bool) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithWriter replaces the default os.Stdout destination.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writers = []io.Writer{w}
	}
}

// WithWriters sends output to several destinations at once.
func WithWriters(w ...io.Writer) Option {
	return func(c *config) {
		c.writers = w
	}
}
