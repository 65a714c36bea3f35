package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/rory/registry/codegen"
)

// generatedFileMode is readable by build tools and other users.
const generatedFileMode os.FileMode = 0o644

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Dirs    stringList
	Package string
	Output  string
	Verbose bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.Var(&flags.Dirs, "d", "manifest directory to load (repeatable, required)")
	fs.StringVar(&flags.Package, "pkg", "", "package name of the generated file (required)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Verbose, "v", false, "log manifest loading to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: rory generate -d <dir> -pkg <name> [flags]\n\n")
		Writef(output, "Generate a Go file that registers every manifest symbol at init time.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  rory generate -d config/namespaces -pkg app -o namespaces_gen.go\n")
		Writef(output, "\nUse with go:generate:\n")
		Writef(output, "  //go:generate rory generate -d config/namespaces -pkg app -o namespaces_gen.go\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if len(flags.Dirs) == 0 || flags.Package == "" || fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("generate command requires -d and -pkg and takes no arguments")
	}

	reg, err := loadRegistry(context.Background(), flags.Dirs, flags.Verbose)
	if err != nil {
		return err
	}

	src, err := codegen.Generate(reg,
		codegen.WithPackage(flags.Package),
		codegen.WithSource(strings.Join(flags.Dirs, ", ")),
	)
	if err != nil {
		return err
	}

	if flags.Output == "" {
		fmt.Print(string(src))
		return nil
	}

	cleaned := filepath.Clean(flags.Output)
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, src, generatedFileMode); err != nil {
		return fmt.Errorf("writing %s: %w", cleaned, err)
	}
	Writef(os.Stderr, "Wrote %s (%d namespaces)\n", cleaned, reg.Len())
	return nil
}
