package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/erraggy/rory/roryerrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type constantizeInput struct {
	Paths     []string      `json:"paths"               jsonschema:"'/'-delimited paths to resolve"`
	Manifests manifestInput `json:"manifests,omitempty" jsonschema:"Where to load namespace manifests from"`
}

type symbolResult struct {
	Input    string   `json:"input"`
	Resolved bool     `json:"resolved"`
	Path     string   `json:"path,omitempty"`
	Value    any      `json:"value,omitempty"`
	Members  []string `json:"members,omitempty"`
	Missing  string   `json:"missing,omitempty"`
	Walked   []string `json:"walked,omitempty"`
	ErrorMsg string   `json:"error,omitempty"`
}

type constantizeOutput struct {
	Symbols    []symbolResult `json:"symbols"`
	Namespaces int            `json:"namespaces"`
	Unresolved int            `json:"unresolved"`
}

func handleConstantize(ctx context.Context, _ *mcp.CallToolRequest, input constantizeInput) (*mcp.CallToolResult, constantizeOutput, error) {
	if len(input.Paths) == 0 {
		return errResult(fmt.Errorf("at least one path is required")), constantizeOutput{}, nil
	}

	reg, err := input.Manifests.resolve(ctx)
	if err != nil {
		return errResult(err), constantizeOutput{}, nil
	}

	output := constantizeOutput{
		Symbols:    make([]symbolResult, 0, len(input.Paths)),
		Namespaces: reg.Len(),
	}
	for _, p := range input.Paths {
		res := symbolResult{Input: p}
		sym, err := reg.Constantize(p)
		if err != nil {
			output.Unresolved++
			res.ErrorMsg = sanitizeError(err)
			var rerr *roryerrors.ResolutionError
			if errors.As(err, &rerr) {
				res.Missing = rerr.Segment
				res.Walked = rerr.Walked
			}
			output.Symbols = append(output.Symbols, res)
			continue
		}
		res.Resolved = true
		res.Path = sym.Path()
		res.Value = sym.Value()
		res.Members = sym.Members()
		output.Symbols = append(output.Symbols, res)
	}
	return nil, output, nil
}
