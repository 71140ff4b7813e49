package templates

import (
	"strings"

	"github.com/goliatone/go-cvgen/cv"
)

// Minimal is a whitespace-heavy single-column layout with thin rules and
// no decoration. Content is deliberately sparse; it trades density for
// readability.
type Minimal struct{}

// NewMinimal creates the minimal template.
func NewMinimal() cv.Template { return Minimal{} }

func (Minimal) Info() cv.TemplateInfo {
	return cv.TemplateInfo{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "Understated single-column layout built on whitespace and thin rules.",
		Category:    "simple",
		Premium:     false,
		Version:     "1.1.0",
		Features:    []string{"single-column", "whitespace", "lightweight"},
	}
}

// Validate applies the minimal template's policy: sparse layouts need a
// summary to carry the narrative and overflow quickly when lists grow.
func (Minimal) Validate(sd cv.SanitizedDocument) cv.ValidationResult {
	doc := sd.Doc()
	errs := requireNames(doc)

	var warnings []string
	if strings.TrimSpace(doc.Summary) == "" {
		warnings = append(warnings, "minimal layouts lean on a short summary; consider adding one")
	}
	if len(nonEmpty(doc.Skills)) > 8 {
		warnings = append(warnings, "this layout reads best with 8 skills or fewer")
	}
	if len(doc.CustomSections) > 2 {
		warnings = append(warnings, "more than 2 custom sections crowds the minimal layout")
	}

	return cv.NewValidationResult(errs, warnings)
}

func (Minimal) Render(sd cv.SanitizedDocument) cv.Markup {
	doc := sd.Doc()
	var b strings.Builder
	b.WriteString(`<div class="cv minimal">`)
	b.WriteString(minimalHeader(doc))
	b.WriteString(minimalSummary(doc))
	b.WriteString(minimalExperience(doc))
	b.WriteString(minimalEducation(doc))
	b.WriteString(minimalSkillsAndLanguages(doc))
	b.WriteString(minimalProjects(doc))
	b.WriteString(minimalHobbies(doc))
	b.WriteString(minimalCustomSections(doc))
	b.WriteString(`</div>`)
	return cv.Markup(b.String())
}

func minimalHeader(doc cv.CVDocument) string {
	info := doc.PersonalInfo
	var b strings.Builder
	b.WriteString(`<header class="header">`)
	b.WriteString(`<h1 class="name">` + fullName(info) + `</h1>`)
	if info.Title != "" {
		b.WriteString(`<p class="title">` + info.Title + `</p>`)
	}
	var parts []string
	if info.Email != "" {
		parts = append(parts, mailtoAnchor(info.Email, "quiet-link"))
	}
	if info.Phone != "" {
		parts = append(parts, info.Phone)
	}
	if info.LinkedIn != "" {
		parts = append(parts, linkAnchor(info.LinkedIn, "quiet-link"))
	}
	if info.Website != "" {
		parts = append(parts, linkAnchor(info.Website, "quiet-link"))
	}
	if len(parts) > 0 {
		b.WriteString(`<p class="contact">` + strings.Join(parts, "&ensp;/&ensp;") + `</p>`)
	}
	b.WriteString(`</header>`)
	return b.String()
}

func minimalSummary(doc cv.CVDocument) string {
	if doc.Summary == "" {
		return ""
	}
	return `<section class="section"><p class="summary">` + doc.Summary + `</p></section>`
}

func minimalExperience(doc cv.CVDocument) string {
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
		line := contactLine(", ", exp.Position, exp.Company)
		if line != "" {
			b.WriteString(`<h3>` + line + `</h3>`)
		}
		if dates := dateRange(exp.StartDate, exp.EndDate, exp.Current, doc.Locale); dates != "" {
			b.WriteString(`<p class="dates">` + dates + `</p>`)
		}
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

func minimalEducation(doc cv.CVDocument) string {
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
		b.WriteString(`<article class="entry">`)
		line := contactLine(", ", edu.Degree, edu.Institution)
		if line != "" {
			b.WriteString(`<h3>` + line + `</h3>`)
		}
		if dates := dateRange(edu.StartDate, edu.EndDate, false, doc.Locale); dates != "" {
			b.WriteString(`<p class="dates">` + dates + `</p>`)
		}
		if edu.Description != "" {
			b.WriteString(`<p class="desc">` + edu.Description + `</p>`)
		}
		b.WriteString(`</article>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

// minimalSkillsAndLanguages shares one section to keep the page quiet.
func minimalSkillsAndLanguages(doc cv.CVDocument) string {
	skills := nonEmpty(doc.Skills)
	var langs []string
	for _, lang := range doc.Languages {
		if lang.Name == "" {
			continue
		}
		entry := lang.Name + " (" + levelLabel(lang.Level, doc.Locale) + ")"
		langs = append(langs, entry)
	}
	if len(skills) == 0 && len(langs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<section class="section">`)
	if len(skills) > 0 {
		b.WriteString(`<h2>Skills</h2><p class="inline-list">` + strings.Join(skills, ", ") + `</p>`)
	}
	if len(langs) > 0 {
		b.WriteString(`<h2>Languages</h2><p class="inline-list">` + strings.Join(langs, ", ") + `</p>`)
	}
	b.WriteString(`</section>`)
	return b.String()
}

func minimalProjects(doc cv.CVDocument) string {
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
		b.WriteString(`<article class="entry">`)
		if project.Name != "" {
			b.WriteString(`<h3>` + project.Name + `</h3>`)
		}
		if dates := dateRange(project.StartDate, project.EndDate, project.Current, doc.Locale); dates != "" {
			b.WriteString(`<p class="dates">` + dates + `</p>`)
		}
		if project.Description != "" {
			b.WriteString(`<p class="desc">` + project.Description + `</p>`)
		}
		if project.URL != "" {
			b.WriteString(`<p class="desc">` + linkAnchor(project.URL, "quiet-link") + `</p>`)
		}
		b.WriteString(`</article>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

func minimalHobbies(doc cv.CVDocument) string {
	var names []string
	for _, hobby := range doc.Hobbies {
		if hobby.Name != "" {
			names = append(names, hobby.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return `<section class="section"><h2>Interests</h2><p class="inline-list">` +
		strings.Join(names, ", ") + `</p></section>`
}

func minimalCustomSections(doc cv.CVDocument) string {
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

func (Minimal) Styles() cv.Stylesheet { return minimalCSS }

const minimalCSS = cv.Stylesheet(`
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
  font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;
  font-size: 10.5pt;
  font-weight: 300;
  line-height: 1.6;
  color: #262626;
  background: #ffffff;
}

.cv.minimal {
  max-width: 680px;
  margin: 0 auto;
  padding: 40px 8px;
}

.header {
  margin-bottom: 36px;
}

.header .name {
  font-size: 24pt;
  font-weight: 200;
  letter-spacing: 3px;
  text-transform: uppercase;
}

.header .title {
  font-size: 11pt;
  color: #737373;
  margin-top: 6px;
  letter-spacing: 1px;
}

.header .contact {
  font-size: 9pt;
  color: #737373;
  margin-top: 14px;
}

.quiet-link {
  color: #404040;
  text-decoration: none;
}

.section {
  margin-bottom: 28px;
}

.section h2 {
  font-size: 9.5pt;
  font-weight: 400;
  text-transform: uppercase;
  letter-spacing: 3px;
  color: #a3a3a3;
  margin-bottom: 12px;
  margin-top: 16px;
  border-top: 1px solid #e5e5e5;
  padding-top: 12px;
}

.section h2:first-child {
  margin-top: 0;
}

.summary {
  font-size: 11pt;
  color: #404040;
}

.entry {
  margin-bottom: 16px;
}

.entry h3 {
  font-size: 11pt;
  font-weight: 500;
}

.dates {
  font-size: 9pt;
  color: #a3a3a3;
  margin-bottom: 3px;
}

.desc {
  color: #404040;
}

.achievements {
  margin: 5px 0 0 18px;
  color: #404040;
}

.inline-list {
  color: #404040;
  margin-bottom: 8px;
}

@media (max-width: 640px) {
  .cv.minimal { padding: 24px 16px; }
  .header .name { font-size: 19pt; }
}

@media print {
  .cv.minimal { max-width: none; padding: 0; }
  .section { page-break-inside: avoid; }
}
`)
