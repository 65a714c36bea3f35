package coerce

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// EncodeAsJSON coerces v with TryToHash and encodes the result as compact JSON.
func EncodeAsJSON(v any) (string, error) {
	return Encode(v)
}

// EncodeAsYAML coerces v with TryToHash and encodes the result as YAML.
func EncodeAsYAML(v any) (string, error) {
	return Encode(v, WithFormat(FormatYAML))
}

// Encode coerces v and encodes it in the configured format.
// Errors returned by a ToHash method are passed through unchanged.
//
// Example:
//
//	out, err := coerce.Encode(payload,
//	    coerce.WithFormat(coerce.FormatJSON),
//	    coerce.WithIndent(2),
//	)
func Encode(v any, opts ...Option) (string, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return "", err
	}

	plain, err := tryToHash(v, 0, cfg.maxDepth)
	if err != nil {
		return "", err
	}

	var data []byte
	switch cfg.format {
	case FormatYAML:
		data, err = yaml.Marshal(plain)
	default:
		if cfg.indent > 0 {
			data, err = json.MarshalIndent(plain, "", strings.Repeat(" ", cfg.indent))
		} else {
			data, err = json.Marshal(plain)
		}
	}
	if err != nil {
		return "", fmt.Errorf("coerce: encoding %s: %w", cfg.format, err)
	}
	return string(data), nil
}
