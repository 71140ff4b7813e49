package cv

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	errorslib "github.com/goliatone/go-errors"
)

type fakeBackend struct {
	mu    sync.Mutex
	calls int32
	last  Document
	opts  PageOptions
	fail  error
}

func (f *fakeBackend) Generate(ctx context.Context, doc Document, opts PageOptions) ([]byte, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	f.last = doc
	f.opts = opts
	f.mu.Unlock()
	if f.fail != nil {
		return nil, f.fail
	}
	return []byte("PDF:" + string(doc)), nil
}

func (f *fakeBackend) Close() error { return nil }

func newTestGenerator(backend RenderingBackend, tmpls ...Template) *Generator {
	registry := NewRegistry()
	for _, tmpl := range tmpls {
		if err := registry.Register(tmpl); err != nil {
			panic(err)
		}
	}
	return NewGenerator(registry, backend)
}

func validResult() ValidationResult {
	return NewValidationResult(nil, nil)
}

func textCode(t *testing.T, err error) string {
	t.Helper()
	var ge *errorslib.Error
	if !errors.As(err, &ge) {
		t.Fatalf("expected a go-errors error, got %T: %v", err, err)
	}
	return ge.TextCode
}

func TestGenerateMissingFirstNameNeverReachesBackend(t *testing.T) {
	backend := &fakeBackend{}
	gen := newTestGenerator(backend, stubTemplate{id: "alpha", result: validResult(), markup: "<p>x</p>"})

	doc := CVDocument{PersonalInfo: PersonalInfo{LastName: "Doe"}}
	_, err := gen.Generate(context.Background(), doc, "alpha", GenerateOptions{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if code := textCode(t, err); code != "validation" {
		t.Fatalf("expected validation error, got %s", code)
	}
	if atomic.LoadInt32(&backend.calls) != 0 {
		t.Fatalf("expected backend to remain untouched")
	}
}

func TestGenerateUnknownTemplate(t *testing.T) {
	backend := &fakeBackend{}
	gen := newTestGenerator(backend, stubTemplate{id: "alpha", result: validResult()})

	doc := CVDocument{PersonalInfo: PersonalInfo{FirstName: "Jane", LastName: "Doe"}}
	_, err := gen.Generate(context.Background(), doc, "nope", GenerateOptions{})
	if err == nil {
		t.Fatalf("expected template not found error")
	}
	if code := textCode(t, err); code != "template_not_found" {
		t.Fatalf("expected template_not_found, got %s", code)
	}
	if atomic.LoadInt32(&backend.calls) != 0 {
		t.Fatalf("expected backend to remain untouched")
	}
}

func TestGenerateTemplateIncompatible(t *testing.T) {
	backend := &fakeBackend{}
	rejecting := stubTemplate{
		id:     "picky",
		result: NewValidationResult([]string{"needs more experience"}, []string{"thin skills"}),
	}
	gen := newTestGenerator(backend, rejecting)

	doc := CVDocument{PersonalInfo: PersonalInfo{FirstName: "Jane", LastName: "Doe"}}
	_, err := gen.Generate(context.Background(), doc, "picky", GenerateOptions{})
	if err == nil {
		t.Fatalf("expected template incompatible error")
	}
	if code := textCode(t, err); code != "template_incompatible" {
		t.Fatalf("expected template_incompatible, got %s", code)
	}
	if atomic.LoadInt32(&backend.calls) != 0 {
		t.Fatalf("expected backend to remain untouched")
	}
}

func TestGenerateSuccessDrivesPipeline(t *testing.T) {
	backend := &fakeBackend{}
	gen := newTestGenerator(backend, stubTemplate{id: "alpha", result: validResult(), markup: "<p>jane-cv</p>"})

	doc := CVDocument{PersonalInfo: PersonalInfo{FirstName: "Jane", LastName: "Doe"}}
	pdf, err := gen.Generate(context.Background(), doc, "alpha", GenerateOptions{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected pdf bytes")
	}
	if !strings.Contains(string(backend.last), "jane-cv") {
		t.Fatalf("expected assembled markup to reach the backend, got %q", backend.last)
	}
	if !strings.Contains(string(backend.last), "<style>") {
		t.Fatalf("expected stylesheet embedded in assembled document")
	}
}

func TestGenerateAppliesOptionDefaults(t *testing.T) {
	backend := &fakeBackend{}
	gen := newTestGenerator(backend, stubTemplate{id: "alpha", result: validResult()})

	doc := CVDocument{PersonalInfo: PersonalInfo{FirstName: "Jane", LastName: "Doe"}}
	if _, err := gen.Generate(context.Background(), doc, "alpha", GenerateOptions{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	opts := backend.opts
	if opts.Format != "A4" {
		t.Fatalf("expected A4 default, got %q", opts.Format)
	}
	if opts.Margins.Top != "15mm" || opts.Margins.Left != "15mm" {
		t.Fatalf("expected 15mm default margins, got %+v", opts.Margins)
	}
	if opts.Timeout != 30*time.Second {
		t.Fatalf("expected 30s default timeout, got %v", opts.Timeout)
	}
}

func TestGenerateOptionOverrides(t *testing.T) {
	backend := &fakeBackend{}
	gen := newTestGenerator(backend, stubTemplate{id: "alpha", result: validResult()})

	doc := CVDocument{PersonalInfo: PersonalInfo{FirstName: "Jane", LastName: "Doe"}}
	_, err := gen.Generate(context.Background(), doc, "alpha", GenerateOptions{
		Format:    "Letter",
		Margins:   Margins{Top: "10mm"},
		TimeoutMs: 5000,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	opts := backend.opts
	if opts.Format != "Letter" {
		t.Fatalf("expected Letter format, got %q", opts.Format)
	}
	if opts.Margins.Top != "10mm" || opts.Margins.Bottom != "15mm" {
		t.Fatalf("expected partial margin override, got %+v", opts.Margins)
	}
	if opts.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", opts.Timeout)
	}
}

func TestGenerateBackendFailureKinds(t *testing.T) {
	cases := []struct {
		fail error
		code string
	}{
		{fail: NewError(KindTimeout, "render timed out", nil), code: "timeout"},
		{fail: NewError(KindEngine, "browser crashed", nil), code: "engine"},
		{fail: errors.New("weird failure"), code: "internal"},
	}

	for _, tc := range cases {
		backend := &fakeBackend{fail: tc.fail}
		gen := newTestGenerator(backend, stubTemplate{id: "alpha", result: validResult()})
		doc := CVDocument{PersonalInfo: PersonalInfo{FirstName: "Jane", LastName: "Doe"}}

		_, err := gen.Generate(context.Background(), doc, "alpha", GenerateOptions{})
		if err == nil {
			t.Fatalf("expected failure for %v", tc.fail)
		}
		if code := textCode(t, err); code != tc.code {
			t.Fatalf("backend failure %v: expected code %s, got %s", tc.fail, tc.code, code)
		}
	}
}

// nameTemplate renders the document's first name so concurrency tests can
// detect output that belongs to another request.
type nameTemplate struct{ id string }

func (n nameTemplate) Info() TemplateInfo {
	return TemplateInfo{ID: n.id, Name: n.id, Category: "test", Version: "0.0.1"}
}

func (n nameTemplate) Validate(SanitizedDocument) ValidationResult {
	return NewValidationResult(nil, nil)
}

func (n nameTemplate) Render(doc SanitizedDocument) Markup {
	return Markup(`<p class="tpl-` + n.id + `">` + doc.Doc().PersonalInfo.FirstName + `</p>`)
}

func (n nameTemplate) Styles() Stylesheet { return "body{}" }

func TestGenerateConcurrentRequestsDoNotCrossContaminate(t *testing.T) {
	gen := newTestGenerator(&echoBackend{}, nameTemplate{id: "a"}, nameTemplate{id: "b"})

	type request struct {
		name     string
		template string
	}
	requests := []request{
		{name: "Alice", template: "a"},
		{name: "Bob", template: "b"},
		{name: "Carol", template: "a"},
		{name: "Dave", template: "b"},
		{name: "Erin", template: "a"},
	}

	var wg sync.WaitGroup
	results := make([][]byte, len(requests))
	errs := make([]error, len(requests))
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req request) {
			defer wg.Done()
			doc := CVDocument{PersonalInfo: PersonalInfo{FirstName: req.name, LastName: "Tester"}}
			results[i], errs[i] = gen.Generate(context.Background(), doc, req.template, GenerateOptions{})
		}(i, req)
	}
	wg.Wait()

	for i, req := range requests {
		if errs[i] != nil {
			t.Fatalf("request %d: %v", i, errs[i])
		}
		out := string(results[i])
		if !strings.Contains(out, "tpl-"+req.template) {
			t.Fatalf("request %d: expected own template markup, got %q", i, out)
		}
		if !strings.Contains(out, req.name) {
			t.Fatalf("request %d: expected own name in output, got %q", i, out)
		}
		for _, other := range requests {
			if other.name == req.name {
				continue
			}
			if strings.Contains(out, other.name) {
				t.Fatalf("request %d: output contaminated with %q", i, other.name)
			}
		}
	}
}

// echoBackend returns the assembled document so tests can assert that each
// concurrent request gets exactly its own input back.
type echoBackend struct{}

func (echoBackend) Generate(_ context.Context, doc Document, _ PageOptions) ([]byte, error) {
	return []byte(doc), nil
}

func (echoBackend) Close() error { return nil }

func TestValidateDelegatesThroughGenerator(t *testing.T) {
	gen := newTestGenerator(&fakeBackend{}, stubTemplate{
		id:     "alpha",
		result: NewValidationResult([]string{"e"}, []string{"w", "w2"}),
	})

	result := gen.Validate(CVDocument{}, "alpha")
	if result.IsValid {
		t.Fatalf("expected invalid result")
	}
	if result.Score != 70 {
		t.Fatalf("expected score 70, got %d", result.Score)
	}

	missing := gen.Validate(CVDocument{}, "missing")
	if missing.IsValid {
		t.Fatalf("expected synthetic invalid result for unknown template")
	}
}

func TestListTemplates(t *testing.T) {
	gen := newTestGenerator(&fakeBackend{},
		stubTemplate{id: "one", category: "simple"},
		stubTemplate{id: "two", category: "design"},
	)

	infos := gen.ListTemplates()
	if len(infos) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(infos))
	}
	for i, want := range []string{"one", "two"} {
		if infos[i].ID != want {
			t.Fatalf("expected %s at %d, got %s", want, i, infos[i].ID)
		}
	}
}

func TestGenerateRendersStubMarkupForEachName(t *testing.T) {
	// Markup from a stub ignores the document, so rendering the same
	// template twice must be byte-identical.
	gen := newTestGenerator(&echoBackend{}, stubTemplate{id: "alpha", result: validResult(), markup: "<p>static</p>"})
	doc := CVDocument{PersonalInfo: PersonalInfo{FirstName: "Jane", LastName: "Doe"}}

	first, err := gen.Generate(context.Background(), doc, "alpha", GenerateOptions{})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := gen.Generate(context.Background(), doc, "alpha", GenerateOptions{})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected deterministic output:\n%s\n%s", first, second)
	}
	if len(first) == 0 {
		t.Fatalf("expected non-empty output")
	}
}
