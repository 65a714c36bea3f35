package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/erraggy/rory/inflect"
	"github.com/erraggy/rory/roryerrors"
)

// Registry is a hierarchical namespace of symbols.
// It is safe for concurrent use; lookups never block each other.
type Registry struct {
	mu    sync.RWMutex
	root  *Symbol
	count int
}

// New creates an empty Registry.
func New() *Registry {
	r := &Registry{}
	r.root = &Symbol{reg: r, members: make(map[string]*Symbol)}
	return r
}

// Default is the process-wide registry used by the package-level functions.
var Default = New()

// Root returns the anonymous root namespace.
func (r *Registry) Root() *Symbol {
	return r.root
}

// Len returns the number of symbols below the root.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Define declares the namespace at path, creating every missing level.
// Path segments are separated by "/" or "::" and camelized. Defining an
// existing path returns the existing symbol.
func (r *Registry) Define(path string) (*Symbol, error) {
	segments, err := definitionSegments(path)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defineLocked(segments), nil
}

// Register declares the namespace at path and attaches value to it.
// A nil value behaves like Define. Attaching a value to a symbol that
// already carries one is a configuration error.
func (r *Registry) Register(path string, value any) (*Symbol, error) {
	segments, err := definitionSegments(path)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sym := r.defineLocked(segments)
	if value == nil {
		return sym, nil
	}
	if sym.hasValue {
		return nil, &roryerrors.ConfigError{
			Option:  "path",
			Value:   path,
			Message: fmt.Sprintf("%s already has a registered value", sym.Path()),
		}
	}
	sym.value = value
	sym.hasValue = true
	return sym, nil
}

// MustRegister is like Register but panics on error.
// It is intended for package init functions.
func (r *Registry) MustRegister(path string, value any) *Symbol {
	sym, err := r.Register(path, value)
	if err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	return sym
}

func (r *Registry) defineLocked(segments []string) *Symbol {
	cur := r.root
	for _, name := range segments {
		next, ok := cur.members[name]
		if !ok {
			next = &Symbol{reg: r, name: name, parent: cur, members: make(map[string]*Symbol)}
			cur.members[name] = next
			r.count++
		}
		cur = next
	}
	return cur
}

// Lookup returns the direct member of ns with the given name.
// The name is camelized first; a nil ns means the root namespace.
func (r *Registry) Lookup(ns *Symbol, name string) (*Symbol, bool) {
	if ns == nil {
		ns = r.root
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	sym, ok := ns.members[inflect.Camelize(name)]
	return sym, ok
}

// Constantize resolves a "/"-delimited path to its symbol.
//
// Each segment is camelized and looked up as a direct member of the
// namespace resolved so far, starting at the root. Segments may be
// snake_case or PascalCase; "::" is accepted as a separator as well.
// The first missing segment stops the walk with a ResolutionError.
func (r *Registry) Constantize(path string) (*Symbol, error) {
	segments := splitPath(path)

	r.mu.RLock()
	defer r.mu.RUnlock()

	cur := r.root
	walked := make([]string, 0, len(segments))
	for _, segment := range segments {
		name := inflect.Camelize(segment)
		next, ok := cur.members[name]
		if !ok {
			return nil, &roryerrors.ResolutionError{
				Path:    path,
				Segment: name,
				Walked:  walked,
			}
		}
		walked = append(walked, name)
		cur = next
	}
	return cur, nil
}

// Walk calls fn for every symbol below the root in depth-first order,
// members sorted by name. Walking stops when fn returns false.
// fn may call back into the registry.
func (r *Registry) Walk(fn func(*Symbol) bool) {
	r.mu.RLock()
	var ordered []*Symbol
	var collect func(*Symbol)
	collect = func(s *Symbol) {
		names := make([]string, 0, len(s.members))
		for name := range s.members {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			m := s.members[name]
			ordered = append(ordered, m)
			collect(m)
		}
	}
	collect(r.root)
	r.mu.RUnlock()

	for _, s := range ordered {
		if !fn(s) {
			return
		}
	}
}

// splitPath splits a resolution path into raw segments.
// An empty path yields a single empty segment so that it fails to resolve.
func splitPath(path string) []string {
	return strings.Split(strings.ReplaceAll(path, PathSeparator, "/"), "/")
}

// definitionSegments splits and camelizes a definition path, rejecting empty
// segments.
func definitionSegments(path string) ([]string, error) {
	raw := splitPath(path)
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		name := inflect.Camelize(strings.TrimSpace(s))
		if name == "" {
			return nil, &roryerrors.ConfigError{
				Option:  "path",
				Value:   path,
				Message: "namespace path contains an empty segment",
			}
		}
		segments = append(segments, name)
	}
	return segments, nil
}

// Define declares a namespace in the Default registry.
func Define(path string) (*Symbol, error) {
	return Default.Define(path)
}

// Register attaches a value to a namespace in the Default registry.
func Register(path string, value any) (*Symbol, error) {
	return Default.Register(path, value)
}

// MustRegister is like Register but panics on error.
func MustRegister(path string, value any) *Symbol {
	return Default.MustRegister(path, value)
}

// Lookup returns a direct member of ns in the Default registry.
func Lookup(ns *Symbol, name string) (*Symbol, bool) {
	return Default.Lookup(ns, name)
}

// Constantize resolves a path against the Default registry.
func Constantize(path string) (*Symbol, error) {
	return Default.Constantize(path)
}
