// Package coerce prepares nested values for serialization.
//
// Values that know how to describe themselves implement [Hashable]. [TryToHash]
// walks slices and maps depth-first and swaps every Hashable element for the
// result of its ToHash method:
//
//	in := []any{
//	    map[string]any{"perf": smurf, "kerf": []any{plurf, "yurf"}},
//	    nerf,
//	}
//	out, err := coerce.TryToHash(in)
//	// out: []any{map[string]any{"perf": smurf.ToHash(), "kerf": []any{plurf.ToHash(), "yurf"}}, nerf.ToHash()}
//
// The replacement is one-shot. Whatever ToHash returns is used as is and is
// not walked again, even if it contains further Hashable values. Map keys are
// never transformed. Anything that is not a []any, map[string]any,
// map[any]any or Hashable is returned unchanged.
//
// Traversal depth is limited (default [DefaultMaxDepth]) so that cyclic
// structures end in a [roryerrors.ResourceLimitError] rather than a stack
// overflow.
//
// [EncodeAsJSON] and [EncodeAsYAML] run TryToHash and hand the result to the
// encoder.
package coerce
