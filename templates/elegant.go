package templates

import (
	"strings"

	"github.com/goliatone/go-cvgen/cv"
)

// Elegant is a premium serif layout with a monogram crest, hairline gold
// rules, and small-caps section headings.
type Elegant struct{}

// NewElegant creates the elegant template.
func NewElegant() cv.Template { return Elegant{} }

func (Elegant) Info() cv.TemplateInfo {
	return cv.TemplateInfo{
		ID:          "elegant",
		Name:        "Elegant",
		Description: "Refined serif layout with a monogram crest and hairline gold accents.",
		Category:    "traditional",
		Premium:     true,
		Version:     "1.3.2",
		Features:    []string{"monogram", "serif", "small-caps", "premium"},
	}
}

// Validate applies the elegant template's policy: the crest header reads
// incomplete without a title, and the layout was drawn for multilingual
// professional profiles.
func (Elegant) Validate(sd cv.SanitizedDocument) cv.ValidationResult {
	doc := sd.Doc()
	errs := requireNames(doc)

	var warnings []string
	if strings.TrimSpace(doc.PersonalInfo.Title) == "" {
		warnings = append(warnings, "a title beneath the monogram balances the crest header")
	}
	if len(doc.Languages) == 0 {
		warnings = append(warnings, "this layout reserves a panel for languages; consider listing at least one")
	}
	if strings.TrimSpace(doc.Summary) == "" {
		warnings = append(warnings, "an opening profile paragraph suits this formal style")
	}

	return cv.NewValidationResult(errs, warnings)
}

func (Elegant) Render(sd cv.SanitizedDocument) cv.Markup {
	doc := sd.Doc()
	var b strings.Builder
	b.WriteString(`<div class="cv elegant">`)
	b.WriteString(elegantCrest(doc))
	b.WriteString(elegantSummary(doc))
	b.WriteString(elegantExperience(doc))
	b.WriteString(elegantEducation(doc))
	b.WriteString(`<div class="panels">`)
	b.WriteString(elegantSkills(doc))
	b.WriteString(elegantLanguages(doc))
	b.WriteString(`</div>`)
	b.WriteString(elegantProjects(doc))
	b.WriteString(elegantHobbies(doc))
	b.WriteString(elegantCustomSections(doc))
	b.WriteString(`</div>`)
	return cv.Markup(b.String())
}

func elegantCrest(doc cv.CVDocument) string {
	info := doc.PersonalInfo
	var b strings.Builder
	b.WriteString(`<header class="crest">`)
	b.WriteString(`<div class="monogram">` + initials(info) + `</div>`)
	b.WriteString(`<h1 class="name">` + fullName(info) + `</h1>`)
	if info.Title != "" {
		b.WriteString(`<p class="title">` + info.Title + `</p>`)
	}
	var parts []string
	if info.Email != "" {
		parts = append(parts, mailtoAnchor(info.Email, "crest-link"))
	}
	if info.Phone != "" {
		parts = append(parts, info.Phone)
	}
	if info.Address != "" {
		parts = append(parts, info.Address)
	}
	if info.LinkedIn != "" {
		parts = append(parts, linkAnchor(info.LinkedIn, "crest-link"))
	}
	if info.Website != "" {
		parts = append(parts, linkAnchor(info.Website, "crest-link"))
	}
	if len(parts) > 0 {
		b.WriteString(`<p class="contact">` + strings.Join(parts, `<span class="sep"> ❖ </span>`) + `</p>`)
	}
	b.WriteString(`<div class="rule"></div>`)
	b.WriteString(`</header>`)
	return b.String()
}

func elegantSummary(doc cv.CVDocument) string {
	if doc.Summary == "" {
		return ""
	}
	return `<section class="section"><h2>Profile</h2><p class="lede">` + doc.Summary + `</p></section>`
}

func elegantExperience(doc cv.CVDocument) string {
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
		if dates := dateRange(exp.StartDate, exp.EndDate, exp.Current, doc.Locale); dates != "" {
			b.WriteString(`<p class="dates">` + dates + `</p>`)
		}
		heading := contactLine(` <span class="sep">·</span> `, exp.Position, exp.Company)
		if heading != "" {
			b.WriteString(`<h3>` + heading + `</h3>`)
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

func elegantEducation(doc cv.CVDocument) string {
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
		if dates := dateRange(edu.StartDate, edu.EndDate, false, doc.Locale); dates != "" {
			b.WriteString(`<p class="dates">` + dates + `</p>`)
		}
		heading := contactLine(` <span class="sep">·</span> `, edu.Degree, edu.Institution)
		if heading != "" {
			b.WriteString(`<h3>` + heading + `</h3>`)
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

func elegantSkills(doc cv.CVDocument) string {
	skills := nonEmpty(doc.Skills)
	if len(skills) == 0 {
		return ""
	}
	return `<section class="section panel"><h2>Expertise</h2><p class="panel-list">` +
		strings.Join(skills, `<span class="sep"> ❖ </span>`) + `</p></section>`
}

func elegantLanguages(doc cv.CVDocument) string {
	var b strings.Builder
	wrote := false
	for _, lang := range doc.Languages {
		if lang.Name == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section panel"><h2>Languages</h2><ul class="languages">`)
			wrote = true
		}
		b.WriteString(`<li><span class="lang-name">` + lang.Name + `</span>`)
		b.WriteString(`<span class="lang-level">` + levelLabel(lang.Level, doc.Locale) + `</span>`)
		if lang.Certification != "" {
			b.WriteString(`<span class="lang-cert">` + lang.Certification + `</span>`)
		}
		b.WriteString(`</li>`)
	}
	if wrote {
		b.WriteString(`</ul></section>`)
	}
	return b.String()
}

func elegantProjects(doc cv.CVDocument) string {
	var b strings.Builder
	wrote := false
	for _, project := range doc.Projects {
		if project.Name == "" && project.Description == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section"><h2>Selected Work</h2>`)
			wrote = true
		}
		b.WriteString(`<article class="entry">`)
		if dates := dateRange(project.StartDate, project.EndDate, project.Current, doc.Locale); dates != "" {
			b.WriteString(`<p class="dates">` + dates + `</p>`)
		}
		if project.Name != "" {
			b.WriteString(`<h3>` + project.Name + `</h3>`)
		}
		if project.Description != "" {
			b.WriteString(`<p class="desc">` + project.Description + `</p>`)
		}
		meta := []string{}
		if project.Technologies != "" {
			meta = append(meta, project.Technologies)
		}
		if project.URL != "" {
			meta = append(meta, linkAnchor(project.URL, "crest-link"))
		}
		if len(meta) > 0 {
			b.WriteString(`<p class="meta">` + strings.Join(meta, " — ") + `</p>`)
		}
		b.WriteString(`</article>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

func elegantHobbies(doc cv.CVDocument) string {
	var names []string
	for _, hobby := range doc.Hobbies {
		if hobby.Name != "" {
			names = append(names, hobby.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return `<section class="section"><h2>Pursuits</h2><p class="panel-list">` +
		strings.Join(names, `<span class="sep"> ❖ </span>`) + `</p></section>`
}

func elegantCustomSections(doc cv.CVDocument) string {
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

func (Elegant) Styles() cv.Stylesheet { return elegantCSS }

const elegantCSS = cv.Stylesheet(`
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
  font-family: 'Cormorant Garamond', 'Didot', Georgia, serif;
  font-size: 11pt;
  line-height: 1.55;
  color: #2b2620;
  background: #fffdf9;
}

.cv.elegant {
  max-width: 720px;
  margin: 0 auto;
  padding: 34px 8px;
}

.crest {
  text-align: center;
  margin-bottom: 26px;
}

.monogram {
  width: 64px;
  height: 64px;
  margin: 0 auto 14px;
  border: 1px solid #b08d2f;
  border-radius: 50%;
  line-height: 64px;
  font-size: 17pt;
  letter-spacing: 2px;
  color: #b08d2f;
}

.crest .name {
  font-size: 25pt;
  font-weight: 500;
  letter-spacing: 4px;
  text-transform: uppercase;
}

.crest .title {
  font-size: 11.5pt;
  font-style: italic;
  color: #7a6a50;
  margin-top: 6px;
}

.crest .contact {
  font-size: 9pt;
  color: #7a6a50;
  margin-top: 12px;
}

.crest-link {
  color: #6b5a3e;
  text-decoration: none;
}

.sep {
  color: #b08d2f;
}

.rule {
  width: 160px;
  height: 1px;
  background: #b08d2f;
  margin: 18px auto 0;
}

.section {
  margin-bottom: 22px;
}

.section h2 {
  font-size: 11pt;
  font-variant: small-caps;
  letter-spacing: 4px;
  color: #b08d2f;
  text-align: center;
  margin-bottom: 12px;
}

.lede {
  text-align: center;
  font-style: italic;
  color: #4a4238;
}

.entry {
  margin-bottom: 14px;
  text-align: center;
}

.entry .dates {
  font-size: 9pt;
  letter-spacing: 2px;
  color: #a08a5a;
  text-transform: uppercase;
}

.entry h3 {
  font-size: 12pt;
  font-weight: 600;
  margin-top: 2px;
}

.desc {
  margin-top: 3px;
  color: #4a4238;
}

.achievements {
  display: inline-block;
  text-align: left;
  margin: 6px 0 0 18px;
  color: #4a4238;
}

.meta {
  font-size: 9.5pt;
  color: #7a6a50;
  margin-top: 2px;
}

.panels {
  display: flex;
  gap: 28px;
}

.panel {
  flex: 1;
}

.panel-list {
  text-align: center;
  color: #4a4238;
}

.languages {
  list-style: none;
  text-align: center;
}

.languages li {
  margin-bottom: 4px;
}

.lang-name {
  font-weight: 600;
  margin-right: 8px;
}

.lang-level {
  color: #7a6a50;
}

.lang-cert {
  display: block;
  font-size: 9pt;
  color: #a08a5a;
}

@media (max-width: 640px) {
  .panels { flex-direction: column; gap: 0; }
  .crest .name { font-size: 19pt; letter-spacing: 2px; }
}

@media print {
  body { background: #ffffff; }
  .cv.elegant { max-width: none; padding: 0; }
  .section, .entry { page-break-inside: avoid; }
}
`)
