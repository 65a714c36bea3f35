package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/erraggy/rory/coerce"
	"go.yaml.in/yaml/v4"
)

// EncodeFlags contains flags for the encode command
type EncodeFlags struct {
	Format   string
	Indent   int
	MaxDepth int
	Dump     bool
}

// SetupEncodeFlags creates and configures a FlagSet for the encode command.
// Returns the FlagSet and an EncodeFlags struct with bound flag variables.
func SetupEncodeFlags() (*flag.FlagSet, *EncodeFlags) {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	flags := &EncodeFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.IntVar(&flags.Indent, "indent", 0, "JSON indentation in spaces (0 for compact output)")
	fs.IntVar(&flags.MaxDepth, "max-depth", coerce.DefaultMaxDepth, "maximum nesting depth")
	fs.BoolVar(&flags.Dump, "dump", false, "dump the coerced value structure to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: rory encode [flags] <file|->\n\n")
		Writef(output, "Decode a JSON or YAML document, coerce it, and encode it as JSON or YAML.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  rory encode payload.yaml\n")
		Writef(output, "  rory encode -format yaml -dump payload.json\n")
		Writef(output, "  cat payload.json | rory encode -indent 2 -\n")
	}

	return fs, flags
}

// HandleEncode executes the encode command
func HandleEncode(args []string) error {
	fs, flags := SetupEncodeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Format != FormatJSON && flags.Format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", flags.Format, FormatJSON, FormatYAML)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("encode command requires exactly one file path or '-' for stdin")
	}

	inputPath := fs.Arg(0)
	data, err := ReadInput(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", FormatInputPath(inputPath), err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding %s: %w", FormatInputPath(inputPath), err)
	}

	opts := []coerce.Option{
		coerce.WithFormat(coerce.Format(flags.Format)),
		coerce.WithIndent(flags.Indent),
		coerce.WithMaxDepth(flags.MaxDepth),
	}

	if flags.Dump {
		coerced, err := coerce.TryToHashWithOptions(doc, coerce.WithMaxDepth(flags.MaxDepth))
		if err != nil {
			return err
		}
		Writef(os.Stderr, "%s", spew.Sdump(coerced))
	}

	out, err := coerce.Encode(doc, opts...)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
