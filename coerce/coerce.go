package coerce

import (
	"github.com/erraggy/rory/roryerrors"
)

// DefaultMaxDepth is the container nesting depth TryToHash accepts by default.
const DefaultMaxDepth = 100

// Hashable is implemented by values that can describe themselves as plain
// data (scalars, slices and maps).
type Hashable interface {
	ToHash() (any, error)
}

// HashFunc adapts an ordinary function to the Hashable interface.
type HashFunc func() (any, error)

// ToHash implements Hashable.
func (f HashFunc) ToHash() (any, error) {
	return f()
}

// TryToHash replaces every Hashable inside v with its ToHash result.
// It uses DefaultMaxDepth; see TryToHashWithOptions.
func TryToHash(v any) (any, error) {
	return tryToHash(v, 0, DefaultMaxDepth)
}

// TryToHashWithOptions is TryToHash with a configurable depth limit.
//
// Example:
//
//	out, err := coerce.TryToHashWithOptions(payload, coerce.WithMaxDepth(16))
func TryToHashWithOptions(v any, opts ...Option) (any, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return tryToHash(v, 0, cfg.maxDepth)
}

// tryToHash dispatches on the shape of v. Containers are checked before the
// Hashable capability; a ToHash error is returned untouched.
func tryToHash(v any, depth, maxDepth int) (any, error) {
	switch x := v.(type) {
	case []any:
		if err := checkDepth(depth, maxDepth); err != nil {
			return nil, err
		}
		out := make([]any, len(x))
		for i, elem := range x {
			converted, err := tryToHash(elem, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil

	case map[string]any:
		if err := checkDepth(depth, maxDepth); err != nil {
			return nil, err
		}
		out := make(map[string]any, len(x))
		for k, elem := range x {
			converted, err := tryToHash(elem, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			out[k] = converted
		}
		return out, nil

	case map[any]any:
		if err := checkDepth(depth, maxDepth); err != nil {
			return nil, err
		}
		out := make(map[any]any, len(x))
		for k, elem := range x {
			converted, err := tryToHash(elem, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			out[k] = converted
		}
		return out, nil

	case Hashable:
		return x.ToHash()

	default:
		return v, nil
	}
}

func checkDepth(depth, maxDepth int) error {
	if depth < maxDepth {
		return nil
	}
	return &roryerrors.ResourceLimitError{
		ResourceType: "nesting depth",
		Limit:        int64(maxDepth),
		Actual:       int64(depth + 1),
		Message:      "value is nested too deeply or contains a cycle",
	}
}
