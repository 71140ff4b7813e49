package templates

import (
	"strings"

	"github.com/goliatone/go-cvgen/cv"
)

// Modern is a two-column layout with a dark sidebar carrying contact,
// skills, and languages, and a main column for the narrative sections.
type Modern struct{}

// NewModern creates the modern template.
func NewModern() cv.Template { return Modern{} }

func (Modern) Info() cv.TemplateInfo {
	return cv.TemplateInfo{
		ID:          "modern",
		Name:        "Modern",
		Description: "Two-column layout with a dark sidebar and clean sans-serif typography.",
		Category:    "contemporary",
		Premium:     false,
		Version:     "1.4.0",
		Features:    []string{"two-column", "sidebar", "photo", "skill-bars"},
	}
}

// Validate applies the modern template's policy. The sidebar is the
// visual anchor, so it warns when the data that fills it is thin.
func (Modern) Validate(sd cv.SanitizedDocument) cv.ValidationResult {
	doc := sd.Doc()
	errs := requireNames(doc)

	var warnings []string
	if len(nonEmpty(doc.Skills)) < 3 {
		warnings = append(warnings, "this style benefits from at least 3 skills to fill the sidebar")
	}
	if strings.TrimSpace(doc.PersonalInfo.Title) == "" {
		warnings = append(warnings, "a professional title under your name anchors the sidebar header")
	}
	if doc.PersonalInfo.Email == "" && doc.PersonalInfo.Phone == "" {
		warnings = append(warnings, "add an email or phone number so the contact block is not empty")
	}

	return cv.NewValidationResult(errs, warnings)
}

func (Modern) Render(sd cv.SanitizedDocument) cv.Markup {
	doc := sd.Doc()
	var b strings.Builder
	b.WriteString(`<div class="cv modern">`)
	b.WriteString(`<aside class="sidebar">`)
	b.WriteString(modernIdentity(doc))
	b.WriteString(modernContact(doc))
	b.WriteString(modernSkills(doc))
	b.WriteString(modernLanguages(doc))
	b.WriteString(modernHobbies(doc))
	b.WriteString(`</aside>`)
	b.WriteString(`<main class="main">`)
	b.WriteString(modernSummary(doc))
	b.WriteString(modernExperience(doc))
	b.WriteString(modernEducation(doc))
	b.WriteString(modernProjects(doc))
	b.WriteString(modernCustomSections(doc))
	b.WriteString(`</main>`)
	b.WriteString(`</div>`)
	return cv.Markup(b.String())
}

func modernIdentity(doc cv.CVDocument) string {
	info := doc.PersonalInfo
	var b strings.Builder
	b.WriteString(`<div class="identity">`)
	if info.Photo != "" {
		b.WriteString(`<img class="photo" src="` + attr(info.Photo) + `" alt="">`)
	} else {
		b.WriteString(`<div class="monogram">` + initials(info) + `</div>`)
	}
	b.WriteString(`<h1 class="name">` + fullName(info) + `</h1>`)
	if info.Title != "" {
		b.WriteString(`<p class="title">` + info.Title + `</p>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func modernContact(doc cv.CVDocument) string {
	info := doc.PersonalInfo
	var rows []string
	if info.Email != "" {
		rows = append(rows, `<li>`+mailtoAnchor(info.Email, "side-link")+`</li>`)
	}
	if info.Phone != "" {
		rows = append(rows, `<li>`+info.Phone+`</li>`)
	}
	if info.Address != "" {
		rows = append(rows, `<li>`+info.Address+`</li>`)
	}
	if info.LinkedIn != "" {
		rows = append(rows, `<li>`+linkAnchor(info.LinkedIn, "side-link")+`</li>`)
	}
	if info.Website != "" {
		rows = append(rows, `<li>`+linkAnchor(info.Website, "side-link")+`</li>`)
	}
	if len(rows) == 0 {
		return ""
	}
	return `<section class="side-section contact"><h2>Contact</h2><ul>` +
		strings.Join(rows, "") + `</ul></section>`
}

func modernSkills(doc cv.CVDocument) string {
	skills := nonEmpty(doc.Skills)
	if len(skills) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="side-section skills"><h2>Skills</h2><ul class="skill-list">`)
	for _, skill := range skills {
		b.WriteString(`<li>` + skill + `</li>`)
	}
	b.WriteString(`</ul></section>`)
	return b.String()
}

func modernLanguages(doc cv.CVDocument) string {
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
			b.WriteString(`<section class="side-section languages"><h2>Languages</h2>`)
			wrote = true
		}
		b.WriteString(`<div class="language">`)
		b.WriteString(`<div class="language-row"><span>` + lang.Name + `</span>`)
		b.WriteString(`<span class="level-text">` + levelLabel(lang.Level, doc.Locale) + `</span></div>`)
		b.WriteString(`<div class="bar"><div class="bar-fill" style="width:` + itoa(levelPercent(lang.Level)) + `%"></div></div>`)
		if lang.Certification != "" {
			b.WriteString(`<p class="cert">` + lang.Certification + `</p>`)
		}
		b.WriteString(`</div>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

func modernHobbies(doc cv.CVDocument) string {
	var names []string
	for _, hobby := range doc.Hobbies {
		if hobby.Name != "" {
			names = append(names, `<li>`+hobby.Name+`</li>`)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return `<section class="side-section hobbies"><h2>Interests</h2><ul>` +
		strings.Join(names, "") + `</ul></section>`
}

func modernSummary(doc cv.CVDocument) string {
	if doc.Summary == "" {
		return ""
	}
	return `<section class="section summary"><h2>About Me</h2><p>` + doc.Summary + `</p></section>`
}

func modernExperience(doc cv.CVDocument) string {
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
		if dates := dateRange(exp.StartDate, exp.EndDate, exp.Current, doc.Locale); dates != "" {
			b.WriteString(`<span class="dates">` + dates + `</span>`)
		}
		if exp.Position != "" {
			b.WriteString(`<h3>` + exp.Position + `</h3>`)
		}
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

func modernEducation(doc cv.CVDocument) string {
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
		if dates := dateRange(edu.StartDate, edu.EndDate, false, doc.Locale); dates != "" {
			b.WriteString(`<span class="dates">` + dates + `</span>`)
		}
		if edu.Degree != "" {
			b.WriteString(`<h3>` + edu.Degree + `</h3>`)
		}
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

func modernProjects(doc cv.CVDocument) string {
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
		if dates := dateRange(project.StartDate, project.EndDate, project.Current, doc.Locale); dates != "" {
			b.WriteString(`<span class="dates">` + dates + `</span>`)
		}
		if project.Name != "" {
			b.WriteString(`<h3>` + project.Name + `</h3>`)
		}
		if project.Technologies != "" {
			b.WriteString(`<p class="org">` + project.Technologies + `</p>`)
		}
		if project.Description != "" {
			b.WriteString(`<p class="desc">` + project.Description + `</p>`)
		}
		if project.URL != "" {
			b.WriteString(`<p class="meta">` + linkAnchor(project.URL, "main-link") + `</p>`)
		}
		b.WriteString(`</article>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

func modernCustomSections(doc cv.CVDocument) string {
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

func (Modern) Styles() cv.Stylesheet { return modernCSS }

const modernCSS = cv.Stylesheet(`
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
  font-family: 'Helvetica Neue', Arial, sans-serif;
  font-size: 10.5pt;
  line-height: 1.5;
  color: #1e293b;
  background: #ffffff;
}

.cv.modern {
  display: flex;
  min-height: 100vh;
}

.sidebar {
  width: 34%;
  background: #1e293b;
  color: #e2e8f0;
  padding: 28px 20px;
}

.main {
  width: 66%;
  padding: 28px 26px;
}

.identity {
  text-align: center;
  margin-bottom: 24px;
}

.photo {
  width: 110px;
  height: 110px;
  border-radius: 50%;
  object-fit: cover;
  border: 3px solid #38bdf8;
  margin-bottom: 12px;
}

.monogram {
  width: 110px;
  height: 110px;
  border-radius: 50%;
  background: #38bdf8;
  color: #0f172a;
  font-size: 30pt;
  font-weight: 700;
  line-height: 110px;
  margin: 0 auto 12px;
}

.identity .name {
  font-size: 17pt;
  font-weight: 700;
  color: #f8fafc;
}

.identity .title {
  font-size: 10.5pt;
  color: #38bdf8;
  margin-top: 4px;
  text-transform: uppercase;
  letter-spacing: 1px;
}

.side-section {
  margin-bottom: 20px;
}

.side-section h2 {
  font-size: 10pt;
  text-transform: uppercase;
  letter-spacing: 2px;
  color: #38bdf8;
  border-bottom: 1px solid #334155;
  padding-bottom: 4px;
  margin-bottom: 8px;
}

.side-section ul {
  list-style: none;
}

.side-section li {
  margin-bottom: 5px;
  font-size: 9.5pt;
  word-break: break-word;
}

.side-link {
  color: #e2e8f0;
  text-decoration: none;
}

.language {
  margin-bottom: 10px;
}

.language-row {
  display: flex;
  justify-content: space-between;
  font-size: 9.5pt;
  margin-bottom: 3px;
}

.level-text {
  color: #94a3b8;
}

.bar {
  height: 5px;
  background: #334155;
  border-radius: 3px;
  overflow: hidden;
}

.bar-fill {
  height: 100%;
  background: #38bdf8;
}

.cert {
  font-size: 8.5pt;
  color: #94a3b8;
  margin-top: 2px;
}

.section {
  margin-bottom: 20px;
}

.section h2 {
  font-size: 13pt;
  color: #0f172a;
  border-left: 4px solid #38bdf8;
  padding-left: 10px;
  margin-bottom: 12px;
}

.entry {
  margin-bottom: 14px;
  padding-left: 14px;
  border-left: 2px solid #e2e8f0;
}

.entry .dates {
  font-size: 9pt;
  color: #64748b;
  text-transform: uppercase;
  letter-spacing: 1px;
}

.entry h3 {
  font-size: 11.5pt;
  color: #0f172a;
}

.org {
  font-size: 10pt;
  color: #38bdf8;
  font-weight: 600;
}

.desc {
  margin-top: 4px;
}

.achievements {
  margin: 5px 0 0 18px;
}

.meta {
  margin-top: 3px;
  font-size: 9.5pt;
}

.main-link {
  color: #0284c7;
  text-decoration: none;
}

@media (max-width: 640px) {
  .cv.modern { flex-direction: column; }
  .sidebar, .main { width: 100%; }
}

@media print {
  .cv.modern { min-height: auto; }
  .sidebar { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  .section, .entry { page-break-inside: avoid; }
  .photo { border-color: #1e293b; }
}
`)
