package templates

import (
	"strings"

	"github.com/goliatone/go-cvgen/cv"
)

// Tech is a developer-oriented layout: monospace accents, a terminal-style
// header, dot meters for languages, and projects promoted above the work
// history.
type Tech struct{}

// NewTech creates the tech template.
func NewTech() cv.Template { return Tech{} }

func (Tech) Info() cv.TemplateInfo {
	return cv.TemplateInfo{
		ID:          "tech",
		Name:        "Tech",
		Description: "Developer-focused layout with monospace accents and projects up front.",
		Category:    "technology",
		Premium:     false,
		Version:     "1.5.0",
		Features:    []string{"monospace", "projects-first", "skill-tags", "dot-meters"},
	}
}

// Validate applies the tech template's policy: the skill tag cloud and
// project grid are the centerpiece, so thin data there is flagged.
func (Tech) Validate(sd cv.SanitizedDocument) cv.ValidationResult {
	doc := sd.Doc()
	errs := requireNames(doc)

	var warnings []string
	if len(nonEmpty(doc.Skills)) < 5 {
		warnings = append(warnings, "developer profiles on this layout carry 5 or more skills")
	}
	if len(doc.Projects) == 0 {
		warnings = append(warnings, "this layout leads with projects; add at least one")
	}
	if doc.PersonalInfo.Website == "" && doc.PersonalInfo.LinkedIn == "" {
		warnings = append(warnings, "a portfolio or profile link fits the header prompt")
	}

	return cv.NewValidationResult(errs, warnings)
}

func (Tech) Render(sd cv.SanitizedDocument) cv.Markup {
	doc := sd.Doc()
	var b strings.Builder
	b.WriteString(`<div class="cv tech">`)
	b.WriteString(techHeader(doc))
	b.WriteString(techSummary(doc))
	b.WriteString(techSkills(doc))
	b.WriteString(techProjects(doc))
	b.WriteString(techExperience(doc))
	b.WriteString(`<div class="pair">`)
	b.WriteString(`<div class="pane">`)
	b.WriteString(techEducation(doc))
	b.WriteString(`</div>`)
	b.WriteString(`<div class="pane">`)
	b.WriteString(techLanguages(doc))
	b.WriteString(techHobbies(doc))
	b.WriteString(`</div>`)
	b.WriteString(`</div>`)
	b.WriteString(techCustomSections(doc))
	b.WriteString(`</div>`)
	return cv.Markup(b.String())
}

func techHeader(doc cv.CVDocument) string {
	info := doc.PersonalInfo
	var b strings.Builder
	b.WriteString(`<header class="terminal">`)
	b.WriteString(`<div class="terminal-bar"><span class="light r"></span><span class="light y"></span><span class="light g"></span></div>`)
	b.WriteString(`<div class="terminal-body">`)
	b.WriteString(`<h1 class="name"><span class="prompt">$ </span>` + fullName(info) + `</h1>`)
	if info.Title != "" {
		b.WriteString(`<p class="title"><span class="comment"># </span>` + info.Title + `</p>`)
	}
	var parts []string
	if info.Email != "" {
		parts = append(parts, mailtoAnchor(info.Email, "term-link"))
	}
	if info.Phone != "" {
		parts = append(parts, info.Phone)
	}
	if info.Website != "" {
		parts = append(parts, linkAnchor(info.Website, "term-link"))
	}
	if info.LinkedIn != "" {
		parts = append(parts, linkAnchor(info.LinkedIn, "term-link"))
	}
	if len(parts) > 0 {
		b.WriteString(`<p class="contact">` + strings.Join(parts, `<span class="pipe"> | </span>`) + `</p>`)
	}
	b.WriteString(`</div></header>`)
	return b.String()
}

func techSummary(doc cv.CVDocument) string {
	if doc.Summary == "" {
		return ""
	}
	return `<section class="section"><h2>README</h2><p>` + doc.Summary + `</p></section>`
}

func techSkills(doc cv.CVDocument) string {
	skills := nonEmpty(doc.Skills)
	if len(skills) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="section"><h2>Stack</h2><div class="tags">`)
	for _, skill := range skills {
		b.WriteString(`<code class="tag">` + skill + `</code>`)
	}
	b.WriteString(`</div></section>`)
	return b.String()
}

func techProjects(doc cv.CVDocument) string {
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
		b.WriteString(`<div class="entry-head">`)
		if project.Name != "" {
			b.WriteString(`<h3>` + project.Name + `</h3>`)
		}
		if dates := dateRange(project.StartDate, project.EndDate, project.Current, doc.Locale); dates != "" {
			b.WriteString(`<span class="dates">` + dates + `</span>`)
		}
		b.WriteString(`</div>`)
		if project.Technologies != "" {
			b.WriteString(`<p class="tech-line"><code>` + project.Technologies + `</code></p>`)
		}
		if project.Description != "" {
			b.WriteString(`<p class="desc">` + project.Description + `</p>`)
		}
		if project.URL != "" {
			b.WriteString(`<p class="meta">` + linkAnchor(project.URL, "term-link") + `</p>`)
		}
		b.WriteString(`</article>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

func techExperience(doc cv.CVDocument) string {
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
		b.WriteString(`<div class="entry-head">`)
		heading := contactLine(" @ ", exp.Position, exp.Company)
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

func techEducation(doc cv.CVDocument) string {
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

func techLanguages(doc cv.CVDocument) string {
	var b strings.Builder
	wrote := false
	for _, lang := range doc.Languages {
		if lang.Name == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section"><h2>Languages</h2>`)
			wrote = true
		}
		b.WriteString(`<div class="language"><span class="lang-name">` + lang.Name + `</span>`)
		b.WriteString(`<span class="dots">` + levelSegments(lang.Level, "i", "pip", "pip-on") + `</span>`)
		b.WriteString(`<span class="level-text">` + levelLabel(lang.Level, doc.Locale) + `</span></div>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

func techHobbies(doc cv.CVDocument) string {
	var names []string
	for _, hobby := range doc.Hobbies {
		if hobby.Name != "" {
			names = append(names, hobby.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return `<section class="section"><h2>Interests</h2><p class="desc">` +
		strings.Join(names, ", ") + `</p></section>`
}

func techCustomSections(doc cv.CVDocument) string {
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

func (Tech) Styles() cv.Stylesheet { return techCSS }

const techCSS = cv.Stylesheet(`
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
  font-family: 'Inter', 'Segoe UI', sans-serif;
  font-size: 10.5pt;
  line-height: 1.5;
  color: #111827;
  background: #ffffff;
}

.cv.tech {
  max-width: 760px;
  margin: 0 auto;
  padding: 24px 8px;
}

.terminal {
  border: 1px solid #d1d5db;
  border-radius: 10px;
  overflow: hidden;
  margin-bottom: 22px;
}

.terminal-bar {
  background: #111827;
  padding: 8px 12px;
}

.light {
  display: inline-block;
  width: 10px;
  height: 10px;
  border-radius: 50%;
  margin-right: 6px;
}

.light.r { background: #ef4444; }
.light.y { background: #f59e0b; }
.light.g { background: #22c55e; }

.terminal-body {
  background: #1f2937;
  color: #e5e7eb;
  font-family: 'JetBrains Mono', 'Fira Code', monospace;
  padding: 18px 20px;
}

.terminal .name {
  font-size: 16pt;
  font-weight: 600;
}

.prompt {
  color: #22c55e;
}

.comment {
  color: #6b7280;
}

.terminal .title {
  font-size: 10.5pt;
  color: #93c5fd;
  margin-top: 4px;
}

.terminal .contact {
  font-size: 9pt;
  color: #9ca3af;
  margin-top: 10px;
}

.pipe {
  color: #4b5563;
}

.term-link {
  color: #60a5fa;
  text-decoration: none;
}

.section {
  margin-bottom: 20px;
}

.section h2 {
  font-family: 'JetBrains Mono', 'Fira Code', monospace;
  font-size: 10.5pt;
  color: #2563eb;
  text-transform: lowercase;
  margin-bottom: 9px;
}

.section h2::before {
  content: '## ';
  color: #9ca3af;
}

.tags {
  display: flex;
  flex-wrap: wrap;
  gap: 6px;
}

.tag {
  font-family: 'JetBrains Mono', 'Fira Code', monospace;
  font-size: 8.5pt;
  background: #eff6ff;
  color: #1d4ed8;
  border: 1px solid #bfdbfe;
  border-radius: 4px;
  padding: 2px 8px;
}

.entry {
  margin-bottom: 13px;
}

.entry-head {
  display: flex;
  justify-content: space-between;
  align-items: baseline;
}

.entry h3 {
  font-size: 11pt;
  font-weight: 600;
}

.dates {
  font-family: 'JetBrains Mono', 'Fira Code', monospace;
  font-size: 8.5pt;
  color: #6b7280;
  white-space: nowrap;
}

.org {
  color: #2563eb;
  font-size: 10pt;
}

.tech-line code {
  font-family: 'JetBrains Mono', 'Fira Code', monospace;
  font-size: 8.5pt;
  color: #7c3aed;
}

.desc {
  margin-top: 3px;
  color: #374151;
}

.achievements {
  margin: 5px 0 0 18px;
  color: #374151;
}

.meta {
  font-size: 9pt;
  margin-top: 2px;
}

.pair {
  display: flex;
  gap: 24px;
}

.pane {
  flex: 1;
}

.language {
  display: flex;
  align-items: center;
  gap: 8px;
  margin-bottom: 6px;
}

.lang-name {
  min-width: 80px;
  font-weight: 500;
}

.dots {
  display: inline-flex;
  gap: 3px;
}

.pip {
  width: 8px;
  height: 8px;
  border-radius: 50%;
  background: #e5e7eb;
}

.pip-on {
  background: #2563eb;
}

.level-text {
  font-size: 8.5pt;
  color: #6b7280;
}

@media (max-width: 640px) {
  .pair { flex-direction: column; }
  .entry-head { flex-direction: column; align-items: flex-start; }
}

@media print {
  .terminal-bar { display: none; }
  .terminal-body { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  .tag, .pip, .pip-on { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  .section, .entry { page-break-inside: avoid; }
}
`)
