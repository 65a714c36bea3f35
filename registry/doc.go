// Package registry resolves "/"-delimited name paths to namespace symbols.
//
// A [Registry] is a tree of [Symbol] values rooted at an anonymous root
// namespace. Each level is addressed by its PascalCase name, so the path
// "origami_delivery_man/under_where/skippy" walks Root -> OrigamiDeliveryMan
// -> UnderWhere -> Skippy. Segments are camelized with [inflect.Camelize]
// before lookup, which means snake_case and PascalCase segments address the
// same symbol.
//
// # Population
//
// Registries are filled at start-up and only read afterwards. Symbols can be
// declared in code:
//
//	registry.MustRegister("controllers/home", newHomeController)
//
// or declared in manifest files and loaded from a directory tree:
//
//	if _, err := registry.LoadDir(ctx, "config/namespaces"); err != nil {
//	    return err
//	}
//
// YAML manifests list namespaces and valued symbols:
//
//	namespaces:
//	  - origami_delivery_man/under_where/skippy
//	symbols:
//	  controllers/home:
//	    action: index
//
// HCL manifests nest namespace blocks:
//
//	namespace "origami_delivery_man" {
//	  namespace "under_where" {
//	    namespace "skippy" {
//	      value = { action = "index" }
//	    }
//	  }
//	}
//
// # Resolution
//
// [Registry.Constantize] walks the path one segment at a time and fails with
// a [roryerrors.ResolutionError] naming the missing segment and the prefix
// that was walked. There is no fallback to partial matches.
//
// The package-level functions operate on [Default], the process-wide registry.
package registry
