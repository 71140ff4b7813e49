package templates

import (
	"strings"

	"github.com/goliatone/go-cvgen/cv"
)

// Executive is a premium business layout aimed at senior candidates:
// a navy letterhead, a leadership summary band, and experience presented
// before everything else. It is the only template that hard-requires a
// work history.
type Executive struct{}

// NewExecutive creates the executive template.
func NewExecutive() cv.Template { return Executive{} }

func (Executive) Info() cv.TemplateInfo {
	return cv.TemplateInfo{
		ID:          "executive",
		Name:        "Executive",
		Description: "Formal letterhead layout for senior profiles, experience first.",
		Category:    "business",
		Premium:     true,
		Version:     "2.0.1",
		Features:    []string{"letterhead", "experience-first", "formal", "premium"},
	}
}

// Validate applies the executive template's policy: names and at least
// one experience entry are hard requirements for a seniority-focused
// layout; thin supporting sections are advisory.
func (Executive) Validate(sd cv.SanitizedDocument) cv.ValidationResult {
	doc := sd.Doc()
	errs := requireNames(doc)
	if !hasExperiences(doc) {
		errs = append(errs, "the executive layout requires at least one experience entry")
	}

	var warnings []string
	if strings.TrimSpace(doc.Summary) == "" {
		warnings = append(warnings, "a leadership summary is expected at the top of this layout")
	}
	if strings.TrimSpace(doc.PersonalInfo.Title) == "" {
		warnings = append(warnings, "a current title completes the letterhead")
	}
	if len(doc.Education) == 0 {
		warnings = append(warnings, "senior profiles usually list formal education")
	}

	return cv.NewValidationResult(errs, warnings)
}

func (Executive) Render(sd cv.SanitizedDocument) cv.Markup {
	doc := sd.Doc()
	var b strings.Builder
	b.WriteString(`<div class="cv executive">`)
	b.WriteString(executiveLetterhead(doc))
	b.WriteString(executiveSummary(doc))
	b.WriteString(executiveExperience(doc))
	b.WriteString(`<div class="columns">`)
	b.WriteString(`<div class="col">`)
	b.WriteString(executiveEducation(doc))
	b.WriteString(executiveProjects(doc))
	b.WriteString(`</div>`)
	b.WriteString(`<div class="col">`)
	b.WriteString(executiveSkills(doc))
	b.WriteString(executiveLanguages(doc))
	b.WriteString(executiveHobbies(doc))
	b.WriteString(`</div>`)
	b.WriteString(`</div>`)
	b.WriteString(executiveCustomSections(doc))
	b.WriteString(`</div>`)
	return cv.Markup(b.String())
}

func executiveLetterhead(doc cv.CVDocument) string {
	info := doc.PersonalInfo
	var b strings.Builder
	b.WriteString(`<header class="letterhead">`)
	b.WriteString(`<div class="letterhead-main">`)
	b.WriteString(`<h1 class="name">` + fullName(info) + `</h1>`)
	if info.Title != "" {
		b.WriteString(`<p class="title">` + info.Title + `</p>`)
	}
	b.WriteString(`</div>`)

	var rows []string
	if info.Email != "" {
		rows = append(rows, mailtoAnchor(info.Email, "head-link"))
	}
	if info.Phone != "" {
		rows = append(rows, info.Phone)
	}
	if info.Address != "" {
		rows = append(rows, info.Address)
	}
	if info.LinkedIn != "" {
		rows = append(rows, linkAnchor(info.LinkedIn, "head-link"))
	}
	if len(rows) > 0 {
		b.WriteString(`<div class="letterhead-contact">`)
		for _, row := range rows {
			b.WriteString(`<p>` + row + `</p>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</header>`)
	return b.String()
}

func executiveSummary(doc cv.CVDocument) string {
	if doc.Summary == "" {
		return ""
	}
	return `<section class="section summary-band"><h2>Executive Summary</h2><p>` +
		doc.Summary + `</p></section>`
}

func executiveExperience(doc cv.CVDocument) string {
	if !hasExperiences(doc) {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="section experience"><h2>Professional Experience</h2>`)
	for _, exp := range doc.Experiences {
		if exp.Position == "" && exp.Company == "" && exp.Description == "" {
			continue
		}
		b.WriteString(`<article class="entry">`)
		b.WriteString(`<div class="entry-head">`)
		b.WriteString(`<div>`)
		if exp.Position != "" {
			b.WriteString(`<h3>` + exp.Position + `</h3>`)
		}
		if exp.Company != "" {
			b.WriteString(`<p class="org">` + exp.Company + `</p>`)
		}
		b.WriteString(`</div>`)
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

func executiveEducation(doc cv.CVDocument) string {
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
		if edu.Degree != "" {
			b.WriteString(`<h3>` + edu.Degree + `</h3>`)
		}
		if edu.Institution != "" {
			b.WriteString(`<p class="org">` + edu.Institution + `</p>`)
		}
		if dates := dateRange(edu.StartDate, edu.EndDate, false, doc.Locale); dates != "" {
			b.WriteString(`<p class="dates">` + dates + `</p>`)
		}
		b.WriteString(`</article>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

func executiveProjects(doc cv.CVDocument) string {
	var b strings.Builder
	wrote := false
	for _, project := range doc.Projects {
		if project.Name == "" && project.Description == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section"><h2>Key Initiatives</h2>`)
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
		b.WriteString(`</article>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

func executiveSkills(doc cv.CVDocument) string {
	skills := nonEmpty(doc.Skills)
	if len(skills) == 0 {
		return ""
	}
	return `<section class="section"><h2>Core Competencies</h2><ul class="competencies">` +
		listItems(skills) + `</ul></section>`
}

func executiveLanguages(doc cv.CVDocument) string {
	var b strings.Builder
	wrote := false
	for _, lang := range doc.Languages {
		if lang.Name == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section"><h2>Languages</h2><ul class="languages">`)
			wrote = true
		}
		b.WriteString(`<li><strong>` + lang.Name + `</strong> — ` + levelLabel(lang.Level, doc.Locale))
		if lang.Certification != "" {
			b.WriteString(` (` + lang.Certification + `)`)
		}
		b.WriteString(`</li>`)
	}
	if wrote {
		b.WriteString(`</ul></section>`)
	}
	return b.String()
}

func executiveHobbies(doc cv.CVDocument) string {
	var names []string
	for _, hobby := range doc.Hobbies {
		if hobby.Name != "" {
			names = append(names, hobby.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return `<section class="section"><h2>Interests</h2><p>` +
		strings.Join(names, ", ") + `</p></section>`
}

func executiveCustomSections(doc cv.CVDocument) string {
	var b strings.Builder
	for _, section := range doc.CustomSections {
		body := customSectionBody(section)
		if section.Title == "" && body == "" {
			continue
		}
		b.WriteString(`<section class="section custom">`)
		if section.Title != "" {
			b.WriteString(`<h2>` + section.Title + `</h2>`)
		}
		b.WriteString(body)
		b.WriteString(`</section>`)
	}
	return b.String()
}

func (Executive) Styles() cv.Stylesheet { return executiveCSS }

const executiveCSS = cv.Stylesheet(`
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
  font-family: 'Garamond', 'Palatino Linotype', Georgia, serif;
  font-size: 11pt;
  line-height: 1.5;
  color: #17233a;
  background: #ffffff;
}

.cv.executive {
  max-width: 780px;
  margin: 0 auto;
}

.letterhead {
  display: flex;
  justify-content: space-between;
  align-items: flex-end;
  background: #17233a;
  color: #f3f4f6;
  padding: 26px 30px;
}

.letterhead .name {
  font-size: 24pt;
  font-weight: 700;
  letter-spacing: 1px;
}

.letterhead .title {
  font-size: 12pt;
  color: #c9a227;
  margin-top: 4px;
  letter-spacing: 1px;
}

.letterhead-contact {
  text-align: right;
  font-size: 9pt;
  color: #d1d5db;
}

.letterhead-contact p {
  margin-bottom: 2px;
}

.head-link {
  color: #d1d5db;
  text-decoration: none;
}

.section {
  padding: 0 30px;
  margin-top: 20px;
}

.section h2 {
  font-size: 11.5pt;
  text-transform: uppercase;
  letter-spacing: 2px;
  color: #17233a;
  border-bottom: 2px solid #c9a227;
  display: inline-block;
  padding-bottom: 2px;
  margin-bottom: 10px;
}

.summary-band {
  background: #f6f4ec;
  margin-top: 0;
  padding-top: 16px;
  padding-bottom: 16px;
}

.entry {
  margin-bottom: 14px;
}

.entry-head {
  display: flex;
  justify-content: space-between;
  align-items: flex-start;
}

.entry h3 {
  font-size: 12pt;
}

.org {
  font-size: 10.5pt;
  color: #5b6474;
  font-style: italic;
}

.dates {
  font-size: 9.5pt;
  color: #8a7a2e;
  white-space: nowrap;
}

.desc {
  margin-top: 4px;
}

.achievements {
  margin: 5px 0 0 20px;
}

.columns {
  display: flex;
  gap: 24px;
}

.columns .col {
  flex: 1;
}

.competencies, .languages {
  list-style: none;
}

.competencies li {
  padding: 3px 0;
  border-bottom: 1px solid #e8e6df;
}

.languages li {
  margin-bottom: 4px;
}

@media (max-width: 640px) {
  .letterhead { flex-direction: column; align-items: flex-start; gap: 12px; }
  .letterhead-contact { text-align: left; }
  .columns { flex-direction: column; }
}

@media print {
  .letterhead, .summary-band { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  .section, .entry { page-break-inside: avoid; }
}
`)
