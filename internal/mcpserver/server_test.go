package mcpserver

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no path", errors.New("resolution error: empty segment"), "resolution error: empty segment"},
		{"absolute path", errors.New("registry: walking /home/albus/ns: not found"), "registry: walking <path>: not found"},
		{"tmp path", errors.New("open /tmp/x/manifest.hcl failed"), "open <path> failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	res := errResult(errors.New("boom at /var/lib/rory"))
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "boom at <path>", text.Text)
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, newServer())
}
