package coerce

import (
	"github.com/erraggy/rory/roryerrors"
)

// Format selects the encoder used by Encode.
type Format string

const (
	// FormatJSON encodes with encoding/json.
	FormatJSON Format = "json"
	// FormatYAML encodes with go.yaml.in/yaml/v4.
	FormatYAML Format = "yaml"
)

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	return f == FormatJSON || f == FormatYAML
}

// Option configures TryToHashWithOptions and Encode.
type Option func(*config) error

type config struct {
	maxDepth int
	format   Format
	indent   int
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		maxDepth: DefaultMaxDepth,
		format:   FormatJSON,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithMaxDepth sets the maximum container nesting depth.
// A value of 0 means use the default (100).
// Returns an error if depth is negative.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) error {
		if depth < 0 {
			return &roryerrors.ConfigError{Option: "maxDepth", Value: depth, Message: "cannot be negative"}
		}
		if depth == 0 {
			depth = DefaultMaxDepth
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithFormat selects the output format of Encode. The default is JSON.
func WithFormat(f Format) Option {
	return func(cfg *config) error {
		if !f.IsValid() {
			return &roryerrors.ConfigError{Option: "format", Value: f, Message: "must be json or yaml"}
		}
		cfg.format = f
		return nil
	}
}

// WithIndent indents JSON output by the given number of spaces per level.
// Zero produces compact output. YAML output always uses the encoder's
// default layout.
func WithIndent(spaces int) Option {
	return func(cfg *config) error {
		if spaces < 0 {
			return &roryerrors.ConfigError{Option: "indent", Value: spaces, Message: "cannot be negative"}
		}
		cfg.indent = spaces
		return nil
	}
}
