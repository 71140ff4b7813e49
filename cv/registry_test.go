package cv

import (
	"errors"
	"strings"
	"testing"
)

type stubTemplate struct {
	id       string
	category string
	result   ValidationResult
	markup   Markup
}

func (s stubTemplate) Info() TemplateInfo {
	return TemplateInfo{ID: s.id, Name: strings.ToUpper(s.id), Category: s.category, Version: "0.0.1"}
}

func (s stubTemplate) Validate(SanitizedDocument) ValidationResult {
	return s.result
}

func (s stubTemplate) Render(SanitizedDocument) Markup {
	return s.markup
}

func (s stubTemplate) Styles() Stylesheet {
	return "body{}"
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubTemplate{id: "alpha"}); err != nil {
		t.Fatalf("register alpha: %v", err)
	}
	if err := registry.Register(stubTemplate{id: "beta"}); err != nil {
		t.Fatalf("register beta: %v", err)
	}

	if !registry.Has("alpha") {
		t.Fatalf("expected alpha to be registered")
	}
	if registry.Has("gamma") {
		t.Fatalf("expected gamma to be unknown")
	}
	if registry.Count() != 2 {
		t.Fatalf("expected count 2, got %d", registry.Count())
	}
	if _, ok := registry.Get("beta"); !ok {
		t.Fatalf("expected beta lookup to succeed")
	}
}

func TestRegistryRejectsDuplicatesAndBlanks(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubTemplate{id: "alpha"}); err != nil {
		t.Fatalf("register alpha: %v", err)
	}
	if err := registry.Register(stubTemplate{id: "alpha"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(stubTemplate{}); err == nil {
		t.Fatalf("expected empty id registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil template registration to fail")
	}
	if registry.Count() != 1 {
		t.Fatalf("expected count 1 after rejections, got %d", registry.Count())
	}
}

func TestRegistryListIsMetadataOnlyAndOrdered(t *testing.T) {
	registry := NewRegistry()
	for _, id := range []string{"third", "first", "second"} {
		if err := registry.Register(stubTemplate{id: id}); err != nil {
			t.Fatalf("register %s: %v", id, err)
		}
	}

	infos := registry.List()
	if len(infos) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(infos))
	}
	want := []string{"third", "first", "second"}
	for i, info := range infos {
		if info.ID != want[i] {
			t.Fatalf("expected registration order %v, got %v at %d", want, info.ID, i)
		}
	}
}

func TestRegistryLoadCollectsFailures(t *testing.T) {
	registry := NewRegistry()
	loaded, failures := registry.Load(
		func() (Template, error) { return stubTemplate{id: "good"}, nil },
		func() (Template, error) { return nil, errors.New("corrupt template") },
		func() (Template, error) { return stubTemplate{id: "also-good"}, nil },
		nil,
	)

	if loaded != 2 {
		t.Fatalf("expected 2 loaded, got %d", loaded)
	}
	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d: %v", len(failures), failures)
	}
	if !registry.Has("good") || !registry.Has("also-good") {
		t.Fatalf("expected surviving templates to be registered")
	}
}

func TestRegistryValidateUnknownIsSynthetic(t *testing.T) {
	registry := NewRegistry()
	result := registry.Validate("missing", Sanitize(CVDocument{}))

	if result.IsValid {
		t.Fatalf("expected synthetic result to be invalid")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "missing") {
		t.Fatalf("expected a single not-found error, got %v", result.Errors)
	}
	if result.Score != 80 {
		t.Fatalf("expected score 80 for one error, got %d", result.Score)
	}
}

func TestRegistryValidateDelegates(t *testing.T) {
	registry := NewRegistry()
	want := NewValidationResult(nil, []string{"thin data"})
	if err := registry.Register(stubTemplate{id: "alpha", result: want}); err != nil {
		t.Fatalf("register: %v", err)
	}

	got := registry.Validate("alpha", Sanitize(CVDocument{}))
	if !got.IsValid || len(got.Warnings) != 1 || got.Score != 95 {
		t.Fatalf("expected delegated result, got %+v", got)
	}
}

func TestRegistryReload(t *testing.T) {
	registry := NewRegistry()
	if _, failures := registry.Load(func() (Template, error) { return stubTemplate{id: "old"}, nil }); len(failures) != 0 {
		t.Fatalf("initial load failed: %v", failures)
	}

	loaded, failures := registry.Reload(func() (Template, error) { return stubTemplate{id: "new"}, nil })
	if loaded != 1 || len(failures) != 0 {
		t.Fatalf("reload: loaded=%d failures=%v", loaded, failures)
	}
	if registry.Has("old") {
		t.Fatalf("expected old template to be cleared by reload")
	}
	if !registry.Has("new") {
		t.Fatalf("expected new template after reload")
	}
}
