package cv

import (
	"context"
	"time"
)

// SectionType describes how a custom section's content is rendered.
type SectionType string

const (
	SectionText        SectionType = "text"
	SectionList        SectionType = "list"
	SectionDescription SectionType = "description"
)

// PersonalInfo holds the identity block of a CV.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Title     string `json:"title"`
	LinkedIn  string `json:"linkedin"`
	Website   string `json:"website"`
	Photo     string `json:"photo"`
}

// Experience is a single work history entry.
type Experience struct {
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Language is a spoken language with a 1..5 proficiency level.
type Language struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	Certification string `json:"certification"`
}

// Project is a personal or professional project entry.
type Project struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	URL          string `json:"url"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
}

// Hobby is an interest entry.
type Hobby struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CustomSection is a user-defined section rendered by type.
type CustomSection struct {
	Title   string      `json:"title"`
	Type    SectionType `json:"type"`
	Content string      `json:"content"`
	Items   []string    `json:"items"`
}

// CVDocument is the structured input aggregate. It is owned by the caller
// and never mutated by the generation core; Sanitize produces a copy.
type CVDocument struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Languages      []Language      `json:"languages"`
	Projects       []Project       `json:"projects"`
	Hobbies        []Hobby         `json:"hobbies"`
	CustomSections []CustomSection `json:"customSections"`
	Locale         string          `json:"locale"`
}

// Markup is template-generated HTML body content.
type Markup string

// Stylesheet is a template's self-contained CSS.
type Stylesheet string

// Document is a fully assembled HTML document ready for rendering.
type Document string

// TemplateInfo is the metadata-only view of a template. Listing exposes
// this, never the executable capabilities.
type TemplateInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Premium     bool     `json:"premium"`
	Version     string   `json:"version"`
	Features    []string `json:"features"`
}

// Template is the plugin contract every document style implements.
// Implementations are constructed once at registry load and must be
// stateless afterwards.
type Template interface {
	Info() TemplateInfo
	Validate(doc SanitizedDocument) ValidationResult
	Render(doc SanitizedDocument) Markup
	Styles() Stylesheet
}

// Margins holds page margins as CSS-style lengths ("15mm", "0.5in", ...).
type Margins struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

// PageOptions controls the physical page output of a rendering backend.
type PageOptions struct {
	Format              string
	Margins             Margins
	Timeout             time.Duration
	BlockExternalAssets bool
}

const (
	DefaultPageFormat = "A4"
	DefaultMargin     = "15mm"
	DefaultTimeout    = 30 * time.Second
)

// Normalize fills zero-value fields with the documented defaults.
func (o PageOptions) Normalize() PageOptions {
	if o.Format == "" {
		o.Format = DefaultPageFormat
	}
	if o.Margins.Top == "" {
		o.Margins.Top = DefaultMargin
	}
	if o.Margins.Right == "" {
		o.Margins.Right = DefaultMargin
	}
	if o.Margins.Bottom == "" {
		o.Margins.Bottom = DefaultMargin
	}
	if o.Margins.Left == "" {
		o.Margins.Left = DefaultMargin
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// GenerateOptions is the caller-facing option set for Generator.Generate.
type GenerateOptions struct {
	Format              string  `json:"format"`
	Margins             Margins `json:"margins"`
	TimeoutMs           int     `json:"timeoutMs"`
	BlockExternalAssets bool    `json:"blockExternalAssets"`
}

// PageOptions converts caller options into normalized backend options.
func (o GenerateOptions) PageOptions() PageOptions {
	opts := PageOptions{
		Format:              o.Format,
		Margins:             o.Margins,
		BlockExternalAssets: o.BlockExternalAssets,
	}
	if o.TimeoutMs > 0 {
		opts.Timeout = time.Duration(o.TimeoutMs) * time.Millisecond
	}
	return opts.Normalize()
}

// RenderingBackend converts an assembled document into page-formatted
// binary output. Implementations own a shared engine; every call must use
// an isolated rendering context so concurrent requests never share state.
type RenderingBackend interface {
	Generate(ctx context.Context, doc Document, opts PageOptions) ([]byte, error)
	Close() error
}

// Logger provides logging hooks.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger is a no-op logger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
