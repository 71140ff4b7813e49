package templates

import (
	"strings"

	"github.com/goliatone/go-cvgen/cv"
)

// Compact is a dense one-page layout: small type, tight spacing, and a
// thin top band instead of a tall header. Built for profiles that must
// fit a single sheet.
type Compact struct{}

// NewCompact creates the compact template.
func NewCompact() cv.Template { return Compact{} }

func (Compact) Info() cv.TemplateInfo {
	return cv.TemplateInfo{
		ID:          "compact",
		Name:        "Compact",
		Description: "Dense single-page layout with tight spacing and a slim header band.",
		Category:    "simple",
		Premium:     false,
		Version:     "1.0.3",
		Features:    []string{"one-page", "dense", "slim-header"},
	}
}

// Validate applies the compact template's policy: density cuts both
// ways, so oversized histories are flagged before they overflow the page.
func (Compact) Validate(sd cv.SanitizedDocument) cv.ValidationResult {
	doc := sd.Doc()
	errs := requireNames(doc)

	var warnings []string
	if len(doc.Experiences) > 6 {
		warnings = append(warnings, "more than 6 experience entries may push this layout past one page")
	}
	for _, exp := range doc.Experiences {
		if len(nonEmpty(exp.Achievements)) > 4 {
			warnings = append(warnings, "keep achievements to 4 per role to preserve the single page")
			break
		}
	}
	if len(strings.Fields(doc.Summary)) > 60 {
		warnings = append(warnings, "summaries over 60 words crowd the compact header band")
	}

	return cv.NewValidationResult(errs, warnings)
}

func (Compact) Render(sd cv.SanitizedDocument) cv.Markup {
	doc := sd.Doc()
	var b strings.Builder
	b.WriteString(`<div class="cv compact">`)
	b.WriteString(compactBand(doc))
	b.WriteString(compactSummary(doc))
	b.WriteString(compactExperience(doc))
	b.WriteString(compactEducation(doc))
	b.WriteString(compactGrid(doc))
	b.WriteString(compactProjects(doc))
	b.WriteString(compactCustomSections(doc))
	b.WriteString(`</div>`)
	return cv.Markup(b.String())
}

func compactBand(doc cv.CVDocument) string {
	info := doc.PersonalInfo
	var b strings.Builder
	b.WriteString(`<header class="band">`)
	b.WriteString(`<div class="band-left"><h1 class="name">` + fullName(info) + `</h1>`)
	if info.Title != "" {
		b.WriteString(`<span class="title">` + info.Title + `</span>`)
	}
	b.WriteString(`</div>`)
	var parts []string
	if info.Email != "" {
		parts = append(parts, mailtoAnchor(info.Email, "band-link"))
	}
	if info.Phone != "" {
		parts = append(parts, info.Phone)
	}
	if info.Address != "" {
		parts = append(parts, info.Address)
	}
	if info.LinkedIn != "" {
		parts = append(parts, linkAnchor(info.LinkedIn, "band-link"))
	}
	if info.Website != "" {
		parts = append(parts, linkAnchor(info.Website, "band-link"))
	}
	if len(parts) > 0 {
		b.WriteString(`<div class="band-right">` + strings.Join(parts, " · ") + `</div>`)
	}
	b.WriteString(`</header>`)
	return b.String()
}

func compactSummary(doc cv.CVDocument) string {
	if doc.Summary == "" {
		return ""
	}
	return `<p class="summary">` + doc.Summary + `</p>`
}

func compactExperience(doc cv.CVDocument) string {
	if !hasExperiences(doc) {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="section"><h2>Experience</h2>`)
	for _, exp := range doc.Experiences {
		if exp.Position == "" && exp.Company == "" && exp.Description == "" {
			continue
		}
		b.WriteString(`<article class="entry">`)
		b.WriteString(`<div class="row">`)
		heading := contactLine(", ", exp.Position, exp.Company)
		if heading != "" {
			b.WriteString(`<h3>` + heading + `</h3>`)
		}
		if dates := dateRange(exp.StartDate, exp.EndDate, exp.Current, doc.Locale); dates != "" {
			b.WriteString(`<span class="dates">` + dates + `</span>`)
		}
		b.WriteString(`</div>`)
		if exp.Description != "" {
			b.WriteString(`<p class="desc">` + exp.Description + `</p>`)
		}
		if items := listItems(exp.Achievements); items != "" {
			b.WriteString(`<ul class="achievements">` + items + `</ul>`)
		}
		b.WriteString(`</article>`)
	}
	b.WriteString(`</section>`)
	return b.String()
}

func compactEducation(doc cv.CVDocument) string {
	var b strings.Builder
	wrote := false
	for _, edu := range doc.Education {
		if edu.Degree == "" && edu.Institution == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section"><h2>Education</h2>`)
			wrote = true
		}
		b.WriteString(`<article class="entry"><div class="row">`)
		heading := contactLine(", ", edu.Degree, edu.Institution)
		if heading != "" {
			b.WriteString(`<h3>` + heading + `</h3>`)
		}
		if dates := dateRange(edu.StartDate, edu.EndDate, false, doc.Locale); dates != "" {
			b.WriteString(`<span class="dates">` + dates + `</span>`)
		}
		b.WriteString(`</div></article>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

// compactGrid packs skills, languages, and hobbies into a three-way grid
// so the ancillary sections consume one visual row.
func compactGrid(doc cv.CVDocument) string {
	skills := nonEmpty(doc.Skills)
	var langs []string
	for _, lang := range doc.Languages {
		if lang.Name == "" {
			continue
		}
		langs = append(langs, lang.Name+" ("+levelLabel(lang.Level, doc.Locale)+")")
	}
	var hobbies []string
	for _, hobby := range doc.Hobbies {
		if hobby.Name != "" {
			hobbies = append(hobbies, hobby.Name)
		}
	}
	if len(skills) == 0 && len(langs) == 0 && len(hobbies) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<section class="section grid">`)
	if len(skills) > 0 {
		b.WriteString(`<div class="cell"><h2>Skills</h2><p>` + strings.Join(skills, ", ") + `</p></div>`)
	}
	if len(langs) > 0 {
		b.WriteString(`<div class="cell"><h2>Languages</h2><p>` + strings.Join(langs, ", ") + `</p></div>`)
	}
	if len(hobbies) > 0 {
		b.WriteString(`<div class="cell"><h2>Interests</h2><p>` + strings.Join(hobbies, ", ") + `</p></div>`)
	}
	b.WriteString(`</section>`)
	return b.String()
}

func compactProjects(doc cv.CVDocument) string {
	var b strings.Builder
	wrote := false
	for _, project := range doc.Projects {
		if project.Name == "" && project.Description == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section"><h2>Projects</h2>`)
			wrote = true
		}
		b.WriteString(`<article class="entry"><div class="row">`)
		if project.Name != "" {
			b.WriteString(`<h3>` + project.Name + `</h3>`)
		}
		if dates := dateRange(project.StartDate, project.EndDate, project.Current, doc.Locale); dates != "" {
			b.WriteString(`<span class="dates">` + dates + `</span>`)
		}
		b.WriteString(`</div>`)
		if project.Description != "" {
			b.WriteString(`<p class="desc">` + project.Description + `</p>`)
		}
		b.WriteString(`</article>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

func compactCustomSections(doc cv.CVDocument) string {
	var b strings.Builder
	for _, section := range doc.CustomSections {
		body := customSectionBody(section)
		if section.Title == "" && body == "" {
			continue
		}
		b.WriteString(`<section class="section">`)
		if section.Title != "" {
			b.WriteString(`<h2>` + section.Title + `</h2>`)
		}
		b.WriteString(body)
		b.WriteString(`</section>`)
	}
	return b.String()
}

func (Compact) Styles() cv.Stylesheet { return compactCSS }

const compactCSS = cv.Stylesheet(`
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
  font-family: 'Source Sans Pro', 'Segoe UI', Arial, sans-serif;
  font-size: 9.5pt;
  line-height: 1.35;
  color: #212529;
  background: #ffffff;
}

.cv.compact {
  max-width: 780px;
  margin: 0 auto;
}

.band {
  display: flex;
  justify-content: space-between;
  align-items: center;
  background: #343a40;
  color: #f8f9fa;
  padding: 12px 18px;
  margin-bottom: 12px;
}

.band .name {
  display: inline;
  font-size: 15pt;
  font-weight: 700;
  margin-right: 10px;
}

.band .title {
  font-size: 10pt;
  color: #adb5bd;
}

.band-right {
  font-size: 8.5pt;
  color: #ced4da;
  text-align: right;
}

.band-link {
  color: #8bb9fe;
  text-decoration: none;
}

.summary {
  font-size: 9.5pt;
  color: #495057;
  margin-bottom: 12px;
  padding: 0 4px;
}

.section {
  margin-bottom: 12px;
  padding: 0 4px;
}

.section h2 {
  font-size: 9.5pt;
  text-transform: uppercase;
  letter-spacing: 1px;
  color: #343a40;
  border-bottom: 1px solid #dee2e6;
  margin-bottom: 6px;
  padding-bottom: 2px;
}

.entry {
  margin-bottom: 7px;
}

.row {
  display: flex;
  justify-content: space-between;
  align-items: baseline;
}

.entry h3 {
  font-size: 10pt;
  font-weight: 600;
}

.dates {
  font-size: 8.5pt;
  color: #868e96;
  white-space: nowrap;
}

.desc {
  color: #495057;
}

.achievements {
  margin: 3px 0 0 16px;
  color: #495057;
}

.grid {
  display: flex;
  gap: 16px;
}

.cell {
  flex: 1;
}

.cell p {
  color: #495057;
}

@media (max-width: 640px) {
  .band { flex-direction: column; align-items: flex-start; gap: 6px; }
  .band-right { text-align: left; }
  .grid { flex-direction: column; gap: 8px; }
}

@media print {
  .band { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  .entry { page-break-inside: avoid; }
}
`)
