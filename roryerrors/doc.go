// Package roryerrors provides structured error types for the rory library.
//
// Import path: github.com/erraggy/rory/roryerrors
//
// Each error type pairs with a sentinel so callers can branch with
// [errors.Is] and pull details out with [errors.As]:
//
//   - [ResolutionError] / [ErrResolution]: a namespace path segment could not be found
//   - [ParseError] / [ErrParse]: a namespace manifest could not be decoded
//   - [ResourceLimitError] / [ErrResourceLimit]: nested data exceeded the depth limit
//   - [ConfigError] / [ErrConfig]: invalid options or conflicting registrations
//
// # Usage Examples
//
//	sym, err := registry.Constantize("admin/users")
//	var resErr *roryerrors.ResolutionError
//	if errors.As(err, &resErr) {
//	    fmt.Printf("no %s under %q\n", resErr.Segment, resErr.Walked)
//	}
//
//	if errors.Is(err, roryerrors.ErrResolution) {
//	    // respond with 404
//	}
package roryerrors
