package cv

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Generator is the public entry point for CV generation. It validates
// input, resolves the template, and drives sanitizer, template, assembler,
// and rendering backend in order. Zero-value dependencies are defaulted on
// first use, mirroring its read-mostly design: Generator itself holds no
// per-request state and supports unbounded concurrent callers.
type Generator struct {
	Registry    *Registry
	Backend     RenderingBackend
	Logger      Logger
	IDGenerator func() string
}

// NewGenerator creates a generator with the provided registry and backend.
func NewGenerator(registry *Registry, backend RenderingBackend) *Generator {
	return &Generator{
		Registry:    registry,
		Backend:     backend,
		Logger:      NopLogger{},
		IDGenerator: uuid.NewString,
	}
}

// ListTemplates returns metadata for every available template.
func (g *Generator) ListTemplates() []TemplateInfo {
	if g == nil || g.Registry == nil {
		return nil
	}
	return g.Registry.List()
}

// Validate sanitizes the document and delegates to the template's own
// validation contract. Unknown ids yield a synthetic invalid result.
func (g *Generator) Validate(doc CVDocument, templateID string) ValidationResult {
	if g == nil || g.Registry == nil {
		return NewValidationResult([]string{"generator is not configured"}, nil)
	}
	return g.Registry.Validate(templateID, Sanitize(doc))
}

// Generate renders a CV document with the requested template and returns
// the PDF bytes. It fails fast with a typed error before touching the
// rendering backend: generic shape validation, then template lookup, then
// the template's own validation contract.
func (g *Generator) Generate(ctx context.Context, doc CVDocument, templateID string, opts GenerateOptions) ([]byte, error) {
	if g == nil {
		return nil, AsGoError(NewError(KindInternal, "generator is nil", nil))
	}
	if g.Registry == nil || g.Backend == nil {
		return nil, AsGoError(NewError(KindInternal, "generator is not configured", nil))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger := g.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	idGen := g.IDGenerator
	if idGen == nil {
		idGen = uuid.NewString
	}

	requestID := idGen()
	logger.Debugf("generate %s: template=%s", requestID, templateID)

	if shape := ValidateShape(doc); !shape.IsValid {
		logger.Infof("generate %s: rejected by shape validation", requestID)
		return nil, AsGoError(NewDetailError(KindValidation, "cv document failed validation", shape.Errors))
	}

	tmpl, ok := g.Registry.Get(templateID)
	if !ok {
		logger.Infof("generate %s: unknown template %q", requestID, templateID)
		return nil, AsGoError(NewError(KindTemplateNotFound, fmt.Sprintf("template %q not found", templateID), nil))
	}

	sanitized := Sanitize(doc)

	result := tmpl.Validate(sanitized)
	for _, warning := range result.Warnings {
		logger.Debugf("generate %s: template warning: %s", requestID, warning)
	}
	if !result.IsValid {
		logger.Infof("generate %s: rejected by template %q", requestID, templateID)
		return nil, AsGoError(NewDetailError(KindTemplateIncompatible, fmt.Sprintf("cv data is incompatible with template %q", templateID), result.Errors))
	}

	document := Assemble(tmpl.Render(sanitized), tmpl.Styles())

	pdf, err := g.Backend.Generate(ctx, document, opts.PageOptions())
	if err != nil {
		kind := KindFromError(err)
		logger.Errorf("generate %s: backend failed (%s): %v", requestID, kind, err)
		switch kind {
		case KindTimeout, KindEngine:
			return nil, AsGoError(err)
		default:
			return nil, AsGoError(NewError(KindInternal, "cv generation failed", err))
		}
	}

	logger.Infof("generate %s: rendered %d bytes with template %s", requestID, len(pdf), templateID)
	return pdf, nil
}
