// Package rory provides the naming and serialization support layer of the
// rory web framework.
//
// The library bridges human-readable names (URL segments, file names) and
// in-process symbol names, and prepares nested values for serialization.
//
// # Overview
//
// The library consists of four packages:
//
//   - inflect: Convert between snake_case tokens and PascalCase identifiers
//   - registry: Resolve "/"-delimited paths to registered namespace symbols
//   - coerce: Replace Hashable values inside nested data and encode the result
//   - roryerrors: Structured error types usable with errors.Is and errors.As
//
// # Quick Start
//
// Convert names:
//
//	inflect.Camelize("water_under_bridge")      // "WaterUnderBridge"
//	inflect.Tokenize("thisStrangeJavalikeWord") // "this_strange_javalike_word"
//
// Register and resolve namespaces:
//
//	registry.MustRegister("origami_delivery_man/under_where/skippy", handler)
//	sym, err := registry.Constantize("origami_delivery_man/under_where/skippy")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sym.Path()) // OrigamiDeliveryMan::UnderWhere::Skippy
//
// Load namespaces declared in YAML or HCL manifests:
//
//	files, err := registry.LoadDir(ctx, "config/namespaces")
//
// Encode values that know how to describe themselves:
//
//	out, err := coerce.EncodeAsJSON([]any{user, map[string]any{"owner": account}})
//
// # Command Line
//
// The rory binary exposes the same operations:
//
//	rory camelize water_under_bridge
//	rory tokenize "Albus Dumbledore & his_friend"
//	rory constantize -d config/namespaces origami_delivery_man/under_where
//	rory encode -format yaml payload.json
//	rory generate -d config/namespaces -pkg app -o namespaces_gen.go
//	rory mcp
package rory
