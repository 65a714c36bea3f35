// Package codegen renders a registry as Go source.
//
// Go cannot load code at run time, so a directory of namespace manifests is
// turned into a file whose init function registers every symbol with
// [registry.Default]. Only leaf namespaces and symbols carrying a value are
// emitted; enclosing namespaces are created implicitly.
package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"go/token"
	"math"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/erraggy/rory/registry"
	"github.com/erraggy/rory/roryerrors"
	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	ParseFS(templateFS, "templates/*.tmpl"))

// Option configures Generate.
type Option func(*config) error

type config struct {
	pkg    string
	source string
}

// WithPackage sets the package clause of the generated file. Required.
func WithPackage(name string) Option {
	return func(cfg *config) error {
		if !token.IsIdentifier(name) {
			return &roryerrors.ConfigError{Option: "package", Value: name, Message: "must be a valid Go identifier"}
		}
		cfg.pkg = name
		return nil
	}
}

// WithSource records where the symbols came from in the file header.
func WithSource(source string) Option {
	return func(cfg *config) error {
		cfg.source = source
		return nil
	}
}

type templateSymbol struct {
	Path  string
	Value string
}

type templateData struct {
	Package string
	Source  string
	Symbols []templateSymbol
}

// Generate renders reg as a Go source file.
func Generate(reg *registry.Registry, opts ...Option) ([]byte, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("codegen: invalid options: %w", err)
		}
	}
	if cfg.pkg == "" {
		return nil, fmt.Errorf("codegen: invalid options: %w",
			&roryerrors.ConfigError{Option: "package", Message: "package name is required"})
	}

	data := templateData{Package: cfg.pkg, Source: cfg.source}
	var litErr error
	reg.Walk(func(s *registry.Symbol) bool {
		if !s.HasValue() && len(s.Members()) > 0 {
			return true
		}
		lit, err := goLiteral(s.Value())
		if err != nil {
			litErr = fmt.Errorf("codegen: %s: %w", s.Path(), err)
			return false
		}
		data.Symbols = append(data.Symbols, templateSymbol{Path: s.Path(), Value: lit})
		return true
	})
	if litErr != nil {
		return nil, litErr
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "registry.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("codegen: executing template: %w", err)
	}

	formatted, err := imports.Process("registry_gen.go", buf.Bytes(), nil)
	if err != nil {
		// nolint:nilerr // unformatted source still compiles
		return buf.Bytes(), nil
	}
	return formatted, nil
}

// goLiteral renders plain manifest data as a Go expression.
func goLiteral(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "nil", nil
	case string:
		return strconv.Quote(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return fmt.Sprintf("int64(%d)", x), nil
	case uint64:
		return fmt.Sprintf("uint64(%d)", x), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return "", fmt.Errorf("cannot render %v as a Go literal", x)
		}
		return fmt.Sprintf("float64(%s)", strconv.FormatFloat(x, 'g', -1, 64)), nil
	case []any:
		parts := make([]string, 0, len(x))
		for _, elem := range x {
			lit, err := goLiteral(elem)
			if err != nil {
				return "", err
			}
			parts = append(parts, lit)
		}
		return "[]any{" + strings.Join(parts, ", ") + "}", nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		parts := make([]string, 0, len(x))
		for _, k := range keys {
			lit, err := goLiteral(x[k])
			if err != nil {
				return "", err
			}
			parts = append(parts, strconv.Quote(k)+": "+lit)
		}
		return "map[string]any{" + strings.Join(parts, ", ") + "}", nil
	default:
		return "", fmt.Errorf("cannot render %T as a Go literal", v)
	}
}
