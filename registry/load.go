package registry

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/erraggy/rory/roryerrors"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.yaml.in/yaml/v4"
)

// DefaultExtensions are the manifest file extensions loaded when none are
// configured with WithExtensions.
var DefaultExtensions = []string{".hcl", ".yaml", ".yml"}

// supportedExtensions maps a manifest extension to its decoder.
var supportedExtensions = map[string]func(*Registry, []byte, string) (int, error){
	".hcl":  (*Registry).loadHCL,
	".yaml": (*Registry).loadYAML,
	".yml":  (*Registry).loadYAML,
	".json": (*Registry).loadYAML,
}

// LoadOption configures a load operation.
type LoadOption func(*loadConfig) error

type loadConfig struct {
	logger     Logger
	extensions []string
	baseDir    string
}

// WithLogger sets the logger used while loading. The default discards output.
func WithLogger(l Logger) LoadOption {
	return func(cfg *loadConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// WithExtensions restricts loading to files with the given extensions.
// Supported extensions are .hcl, .yaml, .yml and .json.
func WithExtensions(exts ...string) LoadOption {
	return func(cfg *loadConfig) error {
		if len(exts) == 0 {
			return &roryerrors.ConfigError{Option: "extensions", Message: "at least one extension is required"}
		}
		for _, ext := range exts {
			if _, ok := supportedExtensions[ext]; !ok {
				return &roryerrors.ConfigError{Option: "extensions", Value: ext, Message: "unsupported manifest extension"}
			}
		}
		cfg.extensions = slices.Clone(exts)
		return nil
	}
}

func applyLoadOptions(opts ...LoadOption) (*loadConfig, error) {
	cfg := &loadConfig{
		logger:     NopLogger{},
		extensions: DefaultExtensions,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadDir loads every manifest below dir into the registry and returns the
// files that were loaded, in walk order.
func (r *Registry) LoadDir(ctx context.Context, dir string, opts ...LoadOption) ([]string, error) {
	opts = append(opts, func(cfg *loadConfig) error {
		cfg.baseDir = dir
		return nil
	})
	return r.LoadFS(ctx, os.DirFS(dir), ".", opts...)
}

// LoadFS loads every manifest below root in fsys.
//
// Files are visited in lexical walk order. Loading stops at the first file
// that fails to decode or conflicts with an earlier registration; symbols
// defined by files loaded before the failure remain registered.
func (r *Registry) LoadFS(ctx context.Context, fsys fs.FS, root string, opts ...LoadOption) ([]string, error) {
	cfg, err := applyLoadOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("registry: invalid options: %w", err)
	}
	logger := cfg.logger.With("root", cfg.display(root))
	logger.Debug("loading namespace manifests", "extensions", cfg.extensions)

	var files []string
	err = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !slices.Contains(cfg.extensions, path.Ext(p)) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		logger.Error("failed to walk manifest directory", "error", err)
		return nil, fmt.Errorf("registry: walking %s: %w", cfg.display(root), err)
	}

	if len(files) == 0 {
		logger.Warn("no namespace manifests found")
		return nil, nil
	}

	loaded := make([]string, 0, len(files))
	total := 0
	for _, p := range files {
		if err := ctx.Err(); err != nil {
			return loaded, err
		}

		name := cfg.display(p)
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return loaded, fmt.Errorf("registry: reading %s: %w", name, err)
		}

		n, err := supportedExtensions[path.Ext(p)](r, data, name)
		if err != nil {
			logger.Error("failed to load manifest", "file", name, "error", err)
			return loaded, fmt.Errorf("registry: loading %s: %w", name, err)
		}
		logger.Debug("loaded manifest", "file", name, "symbols", n)
		loaded = append(loaded, name)
		total += n
	}

	logger.Info("namespace manifests loaded", "files", len(loaded), "symbols", total)
	return loaded, nil
}

// LoadManifest decodes a single manifest held in memory. The decoder is
// chosen from the extension of name. It returns the number of symbols the
// manifest defined.
func (r *Registry) LoadManifest(name string, data []byte) (int, error) {
	load, ok := supportedExtensions[path.Ext(name)]
	if !ok {
		return 0, &roryerrors.ConfigError{Option: "manifest", Value: name, Message: "unsupported manifest extension"}
	}
	return load(r, data, name)
}

// display returns the name of p as the caller knows it.
func (cfg *loadConfig) display(p string) string {
	if cfg.baseDir == "" {
		return p
	}
	return filepath.Join(cfg.baseDir, filepath.FromSlash(p))
}

// yamlManifest is the YAML (and JSON) manifest layout.
type yamlManifest struct {
	Namespaces []string       `yaml:"namespaces"`
	Symbols    map[string]any `yaml:"symbols"`
}

func (r *Registry) loadYAML(data []byte, name string) (int, error) {
	var m yamlManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return 0, &roryerrors.ParseError{Path: name, Message: "invalid YAML manifest", Cause: err}
	}

	n := 0
	for _, ns := range m.Namespaces {
		if _, err := r.Define(ns); err != nil {
			return n, err
		}
		n++
	}

	keys := make([]string, 0, len(m.Symbols))
	for k := range m.Symbols {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if _, err := r.Register(k, m.Symbols[k]); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// hclManifest is the root of an HCL manifest.
type hclManifest struct {
	Namespaces []*hclNamespace `hcl:"namespace,block"`
}

// hclNamespace is one namespace block; blocks nest to any depth.
type hclNamespace struct {
	Name       string          `hcl:"name,label"`
	Value      cty.Value       `hcl:"value,optional"`
	Namespaces []*hclNamespace `hcl:"namespace,block"`
}

func (r *Registry) loadHCL(data []byte, name string) (int, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return 0, hclParseError(name, "invalid HCL manifest", diags)
	}

	var m hclManifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return 0, hclParseError(name, "invalid namespace block", diags)
	}

	n := 0
	var define func(prefix string, blocks []*hclNamespace) error
	define = func(prefix string, blocks []*hclNamespace) error {
		for _, b := range blocks {
			p := b.Name
			if prefix != "" {
				p = prefix + "/" + b.Name
			}
			value, err := ctyToNative(b.Value)
			if err != nil {
				return &roryerrors.ParseError{Path: name, Message: fmt.Sprintf("namespace %q", p), Cause: err}
			}
			if _, err := r.Register(p, value); err != nil {
				return err
			}
			n++
			if err := define(p, b.Namespaces); err != nil {
				return err
			}
		}
		return nil
	}
	if err := define("", m.Namespaces); err != nil {
		return n, err
	}
	return n, nil
}

func hclParseError(name, msg string, diags hcl.Diagnostics) error {
	perr := &roryerrors.ParseError{Path: name, Message: msg, Cause: diags}
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			perr.Line = d.Subject.Start.Line
			perr.Message = msg + ": " + strings.TrimSpace(d.Summary)
			break
		}
	}
	return perr
}

// LoadDir loads manifests below dir into the Default registry.
func LoadDir(ctx context.Context, dir string, opts ...LoadOption) ([]string, error) {
	return Default.LoadDir(ctx, dir, opts...)
}

// LoadFS loads manifests below root in fsys into the Default registry.
func LoadFS(ctx context.Context, fsys fs.FS, root string, opts ...LoadOption) ([]string, error) {
	return Default.LoadFS(ctx, fsys, root, opts...)
}
