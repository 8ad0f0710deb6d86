package config

import (
	"os"

	"github.com/textkit-dev/textkit/pkg/strutil"
)

// Default values for configuration.
const (
	DefaultCommentMarker = "#"
	DefaultDelimiters    = strutil.DefaultDelimiters
	DefaultOutput        = "text"
)

// Environment variable names.
const (
	EnvCommentMarker = "TEXTKIT_COMMENT_MARKER"
	EnvDelimiters    = "TEXTKIT_DELIMITERS"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Sources:       []string{},
		CommentMarker: DefaultCommentMarker,
		Delimiters:    DefaultDelimiters,
		Output:        DefaultOutput,
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if marker, ok := os.LookupEnv(EnvCommentMarker); ok {
		c.CommentMarker = marker
	}
	if delims, ok := os.LookupEnv(EnvDelimiters); ok {
		c.Delimiters = delims
	}
}
