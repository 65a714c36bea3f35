package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTool_JSON(t *testing.T) {
	old := cfg.EncodeIndent
	cfg.EncodeIndent = false
	t.Cleanup(func() { cfg.EncodeIndent = old })

	input := encodeInput{Content: "b: [1, two]\na: {c: true}\n"}
	res, output, err := handleEncode(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, res)

	assert.Equal(t, "json", output.Format)
	assert.JSONEq(t, `{"a":{"c":true},"b":[1,"two"]}`, output.Encoded)
	assert.Equal(t, `{"a":{"c":true},"b":[1,"two"]}`, output.Encoded)
}

func TestEncodeTool_Indented(t *testing.T) {
	old := cfg.EncodeIndent
	cfg.EncodeIndent = true
	t.Cleanup(func() { cfg.EncodeIndent = old })

	_, output, err := handleEncode(context.Background(), &mcp.CallToolRequest{}, encodeInput{Content: `{"a": 1}`})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", output.Encoded)
}

func TestEncodeTool_YAML(t *testing.T) {
	_, output, err := handleEncode(context.Background(), &mcp.CallToolRequest{}, encodeInput{Content: `{"name": "albus"}`, Format: "yaml"})
	require.NoError(t, err)
	assert.Equal(t, "yaml", output.Format)
	assert.Contains(t, output.Encoded, "name: albus")
}

func TestEncodeTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input encodeInput
	}{
		{"empty content", encodeInput{}},
		{"invalid format", encodeInput{Content: "a: 1", Format: "xml"}},
		{"malformed content", encodeInput{Content: "a: ["}},
		{"too deep", encodeInput{Content: `{"a": {"b": {"c": 1}}}`, MaxDepth: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := handleEncode(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
		})
	}
}
