package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agext/levenshtein"
	"github.com/erraggy/rory"
	"github.com/erraggy/rory/cmd/rory/commands"
	"github.com/erraggy/rory/internal/mcpserver"
)

// maxSuggestDistance is the largest edit distance that still yields a suggestion.
const maxSuggestDistance = 2

// commandNames lists every command in the order they appear in the usage text.
var commandNames = []string{
	"camelize", "tokenize", "constantize", "encode", "generate", "mcp", "version", "help",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("rory v%s\n", rory.Version())
		fmt.Println(rory.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "camelize":
		err = commands.HandleCamelize(args)
	case "tokenize":
		err = commands.HandleTokenize(args)
	case "constantize":
		err = commands.HandleConstantize(args)
	case "encode":
		err = commands.HandleEncode(args)
	case "generate":
		err = commands.HandleGenerate(args)
	case "mcp":
		err = runMCP()
	default:
		commands.Writef(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			commands.Writef(os.Stderr, "Did you mean: %s?\n", s)
		}
		commands.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		commands.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// suggestCommand returns the closest known command to input, or "" when
// nothing is within maxSuggestDistance edits.
func suggestCommand(input string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, name := range commandNames {
		if d := levenshtein.Distance(input, name, nil); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

func printUsage() {
	usage := `rory - naming, symbol resolution and serialization helpers

Usage:
  rory <command> [options]

Commands:
  camelize     Convert snake_case tokens to PascalCase identifiers
  tokenize     Convert text or camelCase identifiers to snake_case tokens
  constantize  Resolve '/'-delimited paths against namespace manifests
  encode       Coerce a JSON or YAML document and re-encode it
  generate     Generate Go registration code from namespace manifests
  mcp          Start the MCP server over stdio
  version      Show version information
  help         Show this help message

Examples:
  rory camelize water_under_bridge
  rory tokenize "Albus Dumbledore & his_friend"
  rory constantize -d config/namespaces origami_delivery_man/under_where/skippy
  rory encode -format yaml payload.json
  rory generate -d config/namespaces -pkg app -o namespaces_gen.go

Run 'rory <command> --help' for more information on a command.`

	fmt.Println(usage)
}
