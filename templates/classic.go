package templates

import (
	"strings"

	"github.com/goliatone/go-cvgen/cv"
)

// Classic is a traditional single-column serif layout with a centered
// header. It favors complete work histories and reads well in formal
// hiring processes.
type Classic struct{}

// NewClassic creates the classic template.
func NewClassic() cv.Template { return Classic{} }

func (Classic) Info() cv.TemplateInfo {
	return cv.TemplateInfo{
		ID:          "classic",
		Name:        "Classic",
		Description: "Traditional single-column layout with serif typography and a centered header.",
		Category:    "traditional",
		Premium:     false,
		Version:     "1.2.0",
		Features:    []string{"single-column", "serif", "print-optimized", "ats-friendly"},
	}
}

// Validate applies the classic template's policy: names are mandatory,
// and a formal CV without a summary or work history is flagged.
func (Classic) Validate(sd cv.SanitizedDocument) cv.ValidationResult {
	doc := sd.Doc()
	errs := requireNames(doc)

	var warnings []string
	if strings.TrimSpace(doc.Summary) == "" {
		warnings = append(warnings, "a professional summary strengthens this traditional layout")
	}
	if !hasExperiences(doc) {
		warnings = append(warnings, "classic CVs are built around work experience; consider adding at least one entry")
	}
	if len(nonEmpty(doc.Skills)) == 0 {
		warnings = append(warnings, "listing a few skills helps recruiters scan this layout")
	}

	return cv.NewValidationResult(errs, warnings)
}

func (Classic) Render(sd cv.SanitizedDocument) cv.Markup {
	doc := sd.Doc()
	var b strings.Builder
	b.WriteString(`<div class="cv classic">`)
	b.WriteString(classicHeader(doc))
	b.WriteString(classicSummary(doc))
	b.WriteString(classicExperience(doc))
	b.WriteString(classicEducation(doc))
	b.WriteString(classicSkills(doc))
	b.WriteString(classicLanguages(doc))
	b.WriteString(classicProjects(doc))
	b.WriteString(classicHobbies(doc))
	b.WriteString(classicCustomSections(doc))
	b.WriteString(`</div>`)
	return cv.Markup(b.String())
}

func classicHeader(doc cv.CVDocument) string {
	info := doc.PersonalInfo
	var b strings.Builder
	b.WriteString(`<header class="header">`)
	b.WriteString(`<h1 class="name">` + fullName(info) + `</h1>`)
	if info.Title != "" {
		b.WriteString(`<p class="title">` + info.Title + `</p>`)
	}

	contact := contactLine(" · ", info.Phone, info.Address)
	var parts []string
	if info.Email != "" {
		parts = append(parts, mailtoAnchor(info.Email, "contact-link"))
	}
	if contact != "" {
		parts = append(parts, contact)
	}
	if info.LinkedIn != "" {
		parts = append(parts, linkAnchor(info.LinkedIn, "contact-link"))
	}
	if info.Website != "" {
		parts = append(parts, linkAnchor(info.Website, "contact-link"))
	}
	if len(parts) > 0 {
		b.WriteString(`<p class="contact">` + strings.Join(parts, " · ") + `</p>`)
	}
	b.WriteString(`</header>`)
	return b.String()
}

func classicSummary(doc cv.CVDocument) string {
	if doc.Summary == "" {
		return ""
	}
	return `<section class="section summary"><h2>Profile</h2><p>` + doc.Summary + `</p></section>`
}

func classicExperience(doc cv.CVDocument) string {
	if !hasExperiences(doc) {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="section experience"><h2>Experience</h2>`)
	for _, exp := range doc.Experiences {
		if exp.Position == "" && exp.Company == "" && exp.Description == "" {
			continue
		}
		b.WriteString(`<article class="entry">`)
		b.WriteString(`<div class="entry-head">`)
		if exp.Position != "" {
			b.WriteString(`<h3>` + exp.Position + `</h3>`)
		}
		if dates := dateRange(exp.StartDate, exp.EndDate, exp.Current, doc.Locale); dates != "" {
			b.WriteString(`<span class="dates">` + dates + `</span>`)
		}
		b.WriteString(`</div>`)
		if exp.Company != "" {
			b.WriteString(`<p class="org">` + exp.Company + `</p>`)
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

func classicEducation(doc cv.CVDocument) string {
	if len(doc.Education) == 0 {
		return ""
	}
	var b strings.Builder
	wrote := false
	for _, edu := range doc.Education {
		if edu.Degree == "" && edu.Institution == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section education"><h2>Education</h2>`)
			wrote = true
		}
		b.WriteString(`<article class="entry">`)
		b.WriteString(`<div class="entry-head">`)
		if edu.Degree != "" {
			b.WriteString(`<h3>` + edu.Degree + `</h3>`)
		}
		if dates := dateRange(edu.StartDate, edu.EndDate, false, doc.Locale); dates != "" {
			b.WriteString(`<span class="dates">` + dates + `</span>`)
		}
		b.WriteString(`</div>`)
		if edu.Institution != "" {
			b.WriteString(`<p class="org">` + edu.Institution + `</p>`)
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

func classicSkills(doc cv.CVDocument) string {
	skills := nonEmpty(doc.Skills)
	if len(skills) == 0 {
		return ""
	}
	return `<section class="section skills"><h2>Skills</h2><p class="skill-line">` +
		strings.Join(skills, " · ") + `</p></section>`
}

func classicLanguages(doc cv.CVDocument) string {
	if len(doc.Languages) == 0 {
		return ""
	}
	var b strings.Builder
	wrote := false
	for _, lang := range doc.Languages {
		if lang.Name == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section languages"><h2>Languages</h2><ul class="language-list">`)
			wrote = true
		}
		b.WriteString(`<li><span class="lang-name">` + lang.Name + `</span>`)
		b.WriteString(` <span class="lang-level">` + levelLabel(lang.Level, doc.Locale) + `</span>`)
		if lang.Certification != "" {
			b.WriteString(` <span class="lang-cert">(` + lang.Certification + `)</span>`)
		}
		b.WriteString(`</li>`)
	}
	if wrote {
		b.WriteString(`</ul></section>`)
	}
	return b.String()
}

func classicProjects(doc cv.CVDocument) string {
	if len(doc.Projects) == 0 {
		return ""
	}
	var b strings.Builder
	wrote := false
	for _, project := range doc.Projects {
		if project.Name == "" && project.Description == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section projects"><h2>Projects</h2>`)
			wrote = true
		}
		b.WriteString(`<article class="entry">`)
		b.WriteString(`<div class="entry-head">`)
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
		meta := []string{}
		if project.Technologies != "" {
			meta = append(meta, project.Technologies)
		}
		if project.URL != "" {
			meta = append(meta, linkAnchor(project.URL, "project-link"))
		}
		if len(meta) > 0 {
			b.WriteString(`<p class="meta">` + strings.Join(meta, " · ") + `</p>`)
		}
		b.WriteString(`</article>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

func classicHobbies(doc cv.CVDocument) string {
	if len(doc.Hobbies) == 0 {
		return ""
	}
	var names []string
	for _, hobby := range doc.Hobbies {
		if hobby.Name != "" {
			names = append(names, hobby.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return `<section class="section hobbies"><h2>Interests</h2><p>` +
		strings.Join(names, " · ") + `</p></section>`
}

func classicCustomSections(doc cv.CVDocument) string {
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

func (Classic) Styles() cv.Stylesheet { return classicCSS }

const classicCSS = cv.Stylesheet(`
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
  font-family: Georgia, 'Times New Roman', serif;
  font-size: 11pt;
  line-height: 1.45;
  color: #1f2933;
  background: #ffffff;
}

.cv.classic {
  max-width: 760px;
  margin: 0 auto;
  padding: 24px 8px;
}

.header {
  text-align: center;
  border-bottom: 2px solid #1f2933;
  padding-bottom: 16px;
  margin-bottom: 20px;
}

.header .name {
  font-size: 26pt;
  font-weight: 700;
  letter-spacing: 1px;
}

.header .title {
  font-size: 13pt;
  font-style: italic;
  color: #52606d;
  margin-top: 4px;
}

.header .contact {
  font-size: 9.5pt;
  color: #3e4c59;
  margin-top: 10px;
}

.contact-link, .project-link {
  color: #1f2933;
  text-decoration: none;
  border-bottom: 1px dotted #9aa5b1;
}

.section {
  margin-bottom: 18px;
}

.section h2 {
  font-size: 12pt;
  text-transform: uppercase;
  letter-spacing: 2px;
  border-bottom: 1px solid #9aa5b1;
  padding-bottom: 3px;
  margin-bottom: 10px;
}

.entry {
  margin-bottom: 12px;
}

.entry-head {
  display: flex;
  justify-content: space-between;
  align-items: baseline;
}

.entry-head h3 {
  font-size: 11.5pt;
  font-weight: 700;
}

.dates {
  font-size: 9.5pt;
  font-style: italic;
  color: #52606d;
  white-space: nowrap;
}

.org {
  font-size: 10.5pt;
  font-style: italic;
  color: #3e4c59;
}

.desc {
  margin-top: 3px;
}

.achievements {
  margin: 5px 0 0 20px;
}

.achievements li {
  margin-bottom: 2px;
}

.skill-line, .hobbies p {
  color: #3e4c59;
}

.language-list {
  list-style: none;
}

.language-list li {
  margin-bottom: 3px;
}

.lang-level {
  color: #52606d;
}

.lang-cert {
  font-size: 9.5pt;
  color: #7b8794;
}

.meta {
  font-size: 9.5pt;
  color: #52606d;
  margin-top: 2px;
}

@media (max-width: 640px) {
  .cv.classic { padding: 16px 12px; }
  .entry-head { flex-direction: column; }
  .dates { white-space: normal; }
}

@media print {
  body { background: #ffffff; }
  .cv.classic { max-width: none; padding: 0; }
  .contact-link, .project-link { border-bottom: none; }
  .section { page-break-inside: avoid; }
  .entry { page-break-inside: avoid; }
}
`)
