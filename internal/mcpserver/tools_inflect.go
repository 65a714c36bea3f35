package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/rory/inflect"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inflectInput struct {
	Words []string `json:"words" jsonschema:"The words to convert"`
}

type conversion struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type inflectOutput struct {
	Results []conversion `json:"results"`
}

func handleCamelize(_ context.Context, _ *mcp.CallToolRequest, input inflectInput) (*mcp.CallToolResult, inflectOutput, error) {
	return convertWords(input, inflect.Camelize)
}

func handleTokenize(_ context.Context, _ *mcp.CallToolRequest, input inflectInput) (*mcp.CallToolResult, inflectOutput, error) {
	return convertWords(input, inflect.Tokenize)
}

func convertWords(input inflectInput, fn func(string) string) (*mcp.CallToolResult, inflectOutput, error) {
	if len(input.Words) == 0 {
		return errResult(fmt.Errorf("at least one word is required")), inflectOutput{}, nil
	}
	output := inflectOutput{Results: make([]conversion, 0, len(input.Words))}
	for _, w := range input.Words {
		output.Results = append(output.Results, conversion{Input: w, Output: fn(w)})
	}
	return nil, output, nil
}
