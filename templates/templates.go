// Package templates ships the built-in CV template implementations. Each
// template owns its markup generation, stylesheet, and validation policy;
// registration happens through an explicit startup list rather than any
// runtime discovery.
package templates

import "github.com/goliatone/go-cvgen/cv"

// All returns one instance of every built-in template, in listing order.
func All() []cv.Template {
	return []cv.Template{
		NewClassic(),
		NewModern(),
		NewMinimal(),
		NewCompact(),
		NewTech(),
		NewExecutive(),
		NewElegant(),
		NewCreative(),
	}
}

// Loaders adapts the built-in list to registry loaders.
func Loaders() []cv.TemplateLoader {
	all := All()
	loaders := make([]cv.TemplateLoader, 0, len(all))
	for _, t := range all {
		t := t
		loaders = append(loaders, func() (cv.Template, error) {
			return t, nil
		})
	}
	return loaders
}

// NewRegistry builds a registry preloaded with every built-in template.
// Load failures are impossible for the built-in set, so they are
// discarded here; callers composing their own template sets should use
// Registry.Load directly and log what it collects.
func NewRegistry() *cv.Registry {
	registry := cv.NewRegistry()
	_, _ = registry.Load(Loaders()...)
	return registry
}
