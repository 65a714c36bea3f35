package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/rory/registry"
)

// ConstantizeFlags contains flags for the constantize command
type ConstantizeFlags struct {
	Dirs    stringList
	Format  string
	Verbose bool
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// symbolReport is the structured output of the constantize command.
type symbolReport struct {
	Input   string   `json:"input"             yaml:"input"`
	Path    string   `json:"path"              yaml:"path"`
	Value   any      `json:"value,omitempty"   yaml:"value,omitempty"`
	Members []string `json:"members,omitempty" yaml:"members,omitempty"`
}

// SetupConstantizeFlags creates and configures a FlagSet for the constantize command.
// Returns the FlagSet and a ConstantizeFlags struct with bound flag variables.
func SetupConstantizeFlags() (*flag.FlagSet, *ConstantizeFlags) {
	fs := flag.NewFlagSet("constantize", flag.ContinueOnError)
	flags := &ConstantizeFlags{}

	fs.Var(&flags.Dirs, "d", "manifest directory to load (repeatable)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "v", false, "log manifest loading to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: rory constantize [flags] <path>...\n\n")
		Writef(output, "Resolve '/'-delimited paths against namespaces declared in manifest files.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  rory constantize -d config/namespaces origami_delivery_man\n")
		Writef(output, "  rory constantize -d config/namespaces -format json origami_delivery_man/under_where/skippy\n")
		Writef(output, "\nManifests:\n")
		Writef(output, "  *.hcl, *.yaml and *.yml files below each directory are loaded in walk order.\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    All paths resolved\n")
		Writef(output, "  1    A manifest failed to load or a path did not resolve\n")
	}

	return fs, flags
}

// HandleConstantize executes the constantize command
func HandleConstantize(args []string) error {
	fs, flags := SetupConstantizeFlags()

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
		return fmt.Errorf("constantize command requires at least one path")
	}

	reg, err := loadRegistry(context.Background(), flags.Dirs, flags.Verbose)
	if err != nil {
		return err
	}

	reports := make([]symbolReport, 0, fs.NArg())
	for _, p := range fs.Args() {
		sym, err := reg.Constantize(p)
		if err != nil {
			return err
		}
		reports = append(reports, symbolReport{
			Input:   p,
			Path:    sym.Path(),
			Value:   sym.Value(),
			Members: sym.Members(),
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(reports, flags.Format)
	}
	for _, r := range reports {
		fmt.Println(r.Path)
	}
	return nil
}

// loadRegistry builds a fresh registry from the given manifest directories.
func loadRegistry(ctx context.Context, dirs []string, verbose bool) (*registry.Registry, error) {
	var opts []registry.LoadOption
	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, registry.WithLogger(registry.NewSlogAdapter(slog.New(handler))))
	}

	reg := registry.New()
	for _, dir := range dirs {
		if _, err := reg.LoadDir(ctx, dir, opts...); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
