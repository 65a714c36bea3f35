package registry

import (
	"slices"
	"strings"
)

// PathSeparator joins namespace levels in a rendered symbol path.
const PathSeparator = "::"

// Symbol is a namespace handle in a Registry.
// Symbols are created by the registry and stay valid for its lifetime.
type Symbol struct {
	reg      *Registry
	name     string
	parent   *Symbol
	members  map[string]*Symbol
	value    any
	hasValue bool
}

// Name returns the PascalCase name of the symbol. The root symbol has an
// empty name.
func (s *Symbol) Name() string {
	return s.name
}

// Path returns the fully qualified name, levels joined by "::".
// Example: "OrigamiDeliveryMan::UnderWhere::Skippy"
func (s *Symbol) Path() string {
	return strings.Join(s.Segments(), PathSeparator)
}

// Segments returns the names from the outermost namespace down to s.
func (s *Symbol) Segments() []string {
	var segments []string
	for cur := s; cur != nil && cur.parent != nil; cur = cur.parent {
		segments = append(segments, cur.name)
	}
	slices.Reverse(segments)
	return segments
}

// String implements fmt.Stringer.
func (s *Symbol) String() string {
	if s.IsRoot() {
		return "<root>"
	}
	return s.Path()
}

// Parent returns the enclosing namespace, or nil for the root.
func (s *Symbol) Parent() *Symbol {
	return s.parent
}

// IsRoot reports whether s is the root namespace.
func (s *Symbol) IsRoot() bool {
	return s.parent == nil
}

// Member returns the direct member with the given PascalCase name.
func (s *Symbol) Member(name string) (*Symbol, bool) {
	s.reg.mu.RLock()
	defer s.reg.mu.RUnlock()
	m, ok := s.members[name]
	return m, ok
}

// Members returns the names of the direct members, sorted.
func (s *Symbol) Members() []string {
	s.reg.mu.RLock()
	defer s.reg.mu.RUnlock()
	names := make([]string, 0, len(s.members))
	for name := range s.members {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Value returns the value attached at registration, or nil.
func (s *Symbol) Value() any {
	s.reg.mu.RLock()
	defer s.reg.mu.RUnlock()
	return s.value
}

// HasValue reports whether a value was attached to the symbol.
func (s *Symbol) HasValue() bool {
	s.reg.mu.RLock()
	defer s.reg.mu.RUnlock()
	return s.hasValue
}
