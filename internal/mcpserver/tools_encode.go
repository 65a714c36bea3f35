package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/rory/coerce"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"
)

type encodeInput struct {
	Content  string `json:"content"             jsonschema:"JSON or YAML document to encode"`
	Format   string `json:"format,omitempty"    jsonschema:"Output format: json (default) or yaml"`
	MaxDepth int    `json:"max_depth,omitempty" jsonschema:"Maximum nesting depth (default from RORY_MAX_DEPTH)"`
}

type encodeOutput struct {
	Format  string `json:"format"`
	Encoded string `json:"encoded"`
}

func handleEncode(_ context.Context, _ *mcp.CallToolRequest, input encodeInput) (*mcp.CallToolResult, encodeOutput, error) {
	if input.Content == "" {
		return errResult(fmt.Errorf("content is required")), encodeOutput{}, nil
	}
	if int64(len(input.Content)) > cfg.MaxInlineSize {
		return errResult(fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; set RORY_MAX_INLINE_SIZE to increase",
			len(input.Content), cfg.MaxInlineSize)), encodeOutput{}, nil
	}

	format := coerce.FormatJSON
	if input.Format != "" {
		format = coerce.Format(input.Format)
	}
	if !format.IsValid() {
		return errResult(fmt.Errorf("invalid format %q; valid formats: json, yaml", input.Format)), encodeOutput{}, nil
	}

	maxDepth := cfg.MaxDepth
	if input.MaxDepth > 0 {
		maxDepth = input.MaxDepth
	}

	var doc any
	if err := yaml.Unmarshal([]byte(input.Content), &doc); err != nil {
		return errResult(fmt.Errorf("decoding content: %w", err)), encodeOutput{}, nil
	}

	opts := []coerce.Option{coerce.WithFormat(format), coerce.WithMaxDepth(maxDepth)}
	if cfg.EncodeIndent && format == coerce.FormatJSON {
		opts = append(opts, coerce.WithIndent(2))
	}

	encoded, err := coerce.Encode(doc, opts...)
	if err != nil {
		return errResult(err), encodeOutput{}, nil
	}
	return nil, encodeOutput{Format: string(format), Encoded: encoded}, nil
}
