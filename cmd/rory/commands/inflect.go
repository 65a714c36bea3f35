package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/rory/inflect"
)

// InflectFlags contains flags for the camelize and tokenize commands
type InflectFlags struct {
	Format string
}

// conversion is one input/output pair in structured output.
type conversion struct {
	Input  string `json:"input"  yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// SetupCamelizeFlags creates and configures a FlagSet for the camelize command.
func SetupCamelizeFlags() (*flag.FlagSet, *InflectFlags) {
	return setupInflectFlags("camelize",
		"Convert snake_case tokens to PascalCase identifiers.",
		[]string{"rory camelize water_under_bridge", "rory camelize -format json origami_delivery_man under_where"})
}

// SetupTokenizeFlags creates and configures a FlagSet for the tokenize command.
func SetupTokenizeFlags() (*flag.FlagSet, *InflectFlags) {
	return setupInflectFlags("tokenize",
		"Convert free-form text, camelCase or PascalCase to snake_case tokens.",
		[]string{"rory tokenize thisStrangeJavalikeWord", `rory tokenize "Albus Dumbledore & his_friend"`})
}

func setupInflectFlags(name, summary string, examples []string) (*flag.FlagSet, *InflectFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &InflectFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: rory %s [flags] <word>...\n\n", name)
		Writef(output, "%s\n\n", summary)
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		for _, ex := range examples {
			Writef(output, "  %s\n", ex)
		}
	}

	return fs, flags
}

// HandleCamelize executes the camelize command
func HandleCamelize(args []string) error {
	fs, flags := SetupCamelizeFlags()
	return runInflect(fs, flags, args, inflect.Camelize)
}

// HandleTokenize executes the tokenize command
func HandleTokenize(args []string) error {
	fs, flags := SetupTokenizeFlags()
	return runInflect(fs, flags, args, inflect.Tokenize)
}

func runInflect(fs *flag.FlagSet, flags *InflectFlags, args []string, convert func(string) string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%s command requires at least one word", fs.Name())
	}

	results := make([]conversion, 0, fs.NArg())
	for _, in := range fs.Args() {
		results = append(results, conversion{Input: in, Output: convert(in)})
	}

	if flags.Format != FormatText {
		return OutputStructured(results, flags.Format)
	}
	for _, r := range results {
		fmt.Println(r.Output)
	}
	return nil
}
