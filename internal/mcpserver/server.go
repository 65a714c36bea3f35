// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes rory's naming, resolution and encoding operations as MCP
// tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/rory"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `rory MCP server: converts between snake_case tokens and PascalCase identifiers, resolves '/'-delimited paths against a namespace registry, and coerces nested documents into plain JSON or YAML.

Configuration: defaults are configurable via RORY_* environment variables set in your MCP client config.

Key settings:
- RORY_MANIFEST_DIR (default: unset) - manifest directory used by constantize when no dir or content is given
- RORY_MAX_DEPTH (default: 100) - maximum nesting depth accepted by encode
- RORY_ENCODE_INDENT (default: true) - indent JSON output of encode
- RORY_MAX_INLINE_SIZE (default: 10MiB) - maximum size of inline content
- RORY_CACHE_ENABLED (default: true) - cache loaded manifest registries per session
- RORY_CACHE_MAX_SIZE (default: 10) - number of cached registries`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "rory", Version: rory.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "camelize",
		Description: "Convert snake_case tokens to PascalCase identifiers. Splits each word on '_' and upper-cases the first letter of every fragment; PascalCase input is returned unchanged.",
	}, handleCamelize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Convert free text or camelCase identifiers to snake_case tokens. '&' becomes 'and', camel humps are split, everything is lower-cased and runs of other characters collapse to a single '_'.",
	}, handleTokenize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "constantize",
		Description: "Resolve '/'-delimited paths (e.g. origami_delivery_man/under_where/skippy) against namespaces declared in HCL or YAML manifests. Provide manifests via dir or inline content; RORY_MANIFEST_DIR is used when neither is set. Each path reports its resolved A::B::C path, value and members, or the segment that failed to resolve.",
	}, handleConstantize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "encode",
		Description: "Decode a JSON or YAML document, deep-coerce nested arrays and maps, and encode the result as JSON (default) or YAML. Nesting deeper than max_depth (RORY_MAX_DEPTH, default 100) is rejected.",
	}, handleEncode)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
