package cv

import (
	"fmt"
	"sync"
)

// TemplateLoader constructs a single template. Loaders run during registry
// initialization; a failing loader is collected, not fatal.
type TemplateLoader func() (Template, error)

// Registry indexes templates by identifier. Templates are registered once
// at startup and are immutable afterwards; lookups are read-mostly.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
	order     []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]Template)}
}

// Register adds a template. Nil templates, empty ids, and duplicate ids
// are validation errors.
func (r *Registry) Register(t Template) error {
	if t == nil {
		return NewError(KindValidation, "template is required", nil)
	}
	info := t.Info()
	if info.ID == "" {
		return NewError(KindValidation, "template id is required", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.templates[info.ID]; exists {
		return NewError(KindValidation, fmt.Sprintf("template %q already registered", info.ID), nil)
	}
	r.templates[info.ID] = t
	r.order = append(r.order, info.ID)
	return nil
}

// Load runs each loader and registers what it produces. Failures are
// collected and returned alongside the number of templates registered;
// a single malformed template never prevents the rest from loading.
func (r *Registry) Load(loaders ...TemplateLoader) (int, []error) {
	var failures []error
	loaded := 0
	for i, loader := range loaders {
		if loader == nil {
			failures = append(failures, NewError(KindInternal, fmt.Sprintf("template loader %d is nil", i), nil))
			continue
		}
		t, err := loader()
		if err != nil {
			failures = append(failures, NewError(KindInternal, fmt.Sprintf("template loader %d failed", i), err))
			continue
		}
		if err := r.Register(t); err != nil {
			failures = append(failures, err)
			continue
		}
		loaded++
	}
	return loaded, failures
}

// Reload clears the index and re-runs discovery. Callers must ensure no
// generation is in flight.
func (r *Registry) Reload(loaders ...TemplateLoader) (int, []error) {
	r.mu.Lock()
	r.templates = make(map[string]Template)
	r.order = nil
	r.mu.Unlock()
	return r.Load(loaders...)
}

// Get returns the template for an id.
func (r *Registry) Get(id string) (Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[id]
	return t, ok
}

// Has reports whether an id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// Count returns the number of registered templates.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// List returns metadata for every registered template in registration
// order. No executable capability is exposed.
func (r *Registry) List() []TemplateInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]TemplateInfo, 0, len(r.order))
	for _, id := range r.order {
		if t, ok := r.templates[id]; ok {
			infos = append(infos, t.Info())
		}
	}
	return infos
}

// Validate delegates validation to the template for id. An unknown id
// yields a synthetic invalid result rather than an error.
func (r *Registry) Validate(id string, doc SanitizedDocument) ValidationResult {
	t, ok := r.Get(id)
	if !ok {
		return NewValidationResult([]string{fmt.Sprintf("template %q not found", id)}, nil)
	}
	return t.Validate(doc)
}
