package templates

import (
	"strings"

	"github.com/goliatone/go-cvgen/cv"
)

// Creative is a premium portfolio-style layout: a gradient hero banner
// with decorative shapes, skill chips, and timeline-styled entries. The
// decorative layer is screen-only and hidden for print.
type Creative struct{}

// NewCreative creates the creative template.
func NewCreative() cv.Template { return Creative{} }

func (Creative) Info() cv.TemplateInfo {
	return cv.TemplateInfo{
		ID:          "creative",
		Name:        "Creative",
		Description: "Portfolio-style layout with a gradient hero, skill chips, and a visual timeline.",
		Category:    "design",
		Premium:     true,
		Version:     "1.6.0",
		Features:    []string{"hero-banner", "skill-chips", "timeline", "photo", "premium"},
	}
}

// Validate applies the creative template's policy: the hero and chip
// areas look empty without a photo, a handful of skills, and projects.
func (Creative) Validate(sd cv.SanitizedDocument) cv.ValidationResult {
	doc := sd.Doc()
	errs := requireNames(doc)

	var warnings []string
	if len(nonEmpty(doc.Skills)) < 3 {
		warnings = append(warnings, "this style benefits from at least 3 skills for the chip area")
	}
	if doc.PersonalInfo.Photo == "" {
		warnings = append(warnings, "a photo completes the hero banner of this layout")
	}
	if len(doc.Projects) == 0 {
		warnings = append(warnings, "creative profiles shine with a project or two")
	}

	return cv.NewValidationResult(errs, warnings)
}

func (Creative) Render(sd cv.SanitizedDocument) cv.Markup {
	doc := sd.Doc()
	var b strings.Builder
	b.WriteString(`<div class="cv creative">`)
	b.WriteString(creativeHero(doc))
	b.WriteString(`<div class="body">`)
	b.WriteString(creativeSummary(doc))
	b.WriteString(creativeSkills(doc))
	b.WriteString(creativeExperience(doc))
	b.WriteString(creativeProjects(doc))
	b.WriteString(`<div class="split">`)
	b.WriteString(`<div class="half">`)
	b.WriteString(creativeEducation(doc))
	b.WriteString(`</div>`)
	b.WriteString(`<div class="half">`)
	b.WriteString(creativeLanguages(doc))
	b.WriteString(creativeHobbies(doc))
	b.WriteString(`</div>`)
	b.WriteString(`</div>`)
	b.WriteString(creativeCustomSections(doc))
	b.WriteString(`</div>`)
	b.WriteString(`</div>`)
	return cv.Markup(b.String())
}

func creativeHero(doc cv.CVDocument) string {
	info := doc.PersonalInfo
	var b strings.Builder
	b.WriteString(`<header class="hero">`)
	b.WriteString(`<div class="hero-shapes"><span class="shape s1"></span><span class="shape s2"></span><span class="shape s3"></span></div>`)
	b.WriteString(`<div class="hero-content">`)
	if info.Photo != "" {
		b.WriteString(`<img class="photo" src="` + attr(info.Photo) + `" alt="">`)
	}
	b.WriteString(`<div class="hero-text">`)
	b.WriteString(`<h1 class="name">` + fullName(info) + `</h1>`)
	if info.Title != "" {
		b.WriteString(`<p class="title">` + info.Title + `</p>`)
	}
	var parts []string
	if info.Email != "" {
		parts = append(parts, mailtoAnchor(info.Email, "hero-link"))
	}
	if info.Phone != "" {
		parts = append(parts, info.Phone)
	}
	if info.Website != "" {
		parts = append(parts, linkAnchor(info.Website, "hero-link"))
	}
	if info.LinkedIn != "" {
		parts = append(parts, linkAnchor(info.LinkedIn, "hero-link"))
	}
	if len(parts) > 0 {
		b.WriteString(`<p class="contact">` + strings.Join(parts, " • ") + `</p>`)
	}
	b.WriteString(`</div></div></header>`)
	return b.String()
}

func creativeSummary(doc cv.CVDocument) string {
	if doc.Summary == "" {
		return ""
	}
	return `<section class="section summary"><h2><span class="accent">//</span> About</h2><p>` +
		doc.Summary + `</p></section>`
}

func creativeSkills(doc cv.CVDocument) string {
	skills := nonEmpty(doc.Skills)
	if len(skills) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="section skills"><h2><span class="accent">//</span> Skills</h2><div class="chips">`)
	for _, skill := range skills {
		b.WriteString(`<span class="chip">` + skill + `</span>`)
	}
	b.WriteString(`</div></section>`)
	return b.String()
}

func creativeExperience(doc cv.CVDocument) string {
	if !hasExperiences(doc) {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="section experience"><h2><span class="accent">//</span> Experience</h2><div class="timeline">`)
	for _, exp := range doc.Experiences {
		if exp.Position == "" && exp.Company == "" && exp.Description == "" {
			continue
		}
		b.WriteString(`<article class="timeline-entry"><span class="dot"></span>`)
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
	b.WriteString(`</div></section>`)
	return b.String()
}

func creativeProjects(doc cv.CVDocument) string {
	var cards []string
	for _, project := range doc.Projects {
		if project.Name == "" && project.Description == "" {
			continue
		}
		var c strings.Builder
		c.WriteString(`<article class="card">`)
		if project.Name != "" {
			c.WriteString(`<h3>` + project.Name + `</h3>`)
		}
		if dates := dateRange(project.StartDate, project.EndDate, project.Current, doc.Locale); dates != "" {
			c.WriteString(`<p class="dates">` + dates + `</p>`)
		}
		if project.Description != "" {
			c.WriteString(`<p class="desc">` + project.Description + `</p>`)
		}
		if project.Technologies != "" {
			c.WriteString(`<p class="tech">` + project.Technologies + `</p>`)
		}
		if project.URL != "" {
			c.WriteString(`<p class="tech">` + linkAnchor(project.URL, "card-link") + `</p>`)
		}
		c.WriteString(`</article>`)
		cards = append(cards, c.String())
	}
	if len(cards) == 0 {
		return ""
	}
	return `<section class="section projects"><h2><span class="accent">//</span> Projects</h2><div class="cards">` +
		strings.Join(cards, "") + `</div></section>`
}

func creativeEducation(doc cv.CVDocument) string {
	var b strings.Builder
	wrote := false
	for _, edu := range doc.Education {
		if edu.Degree == "" && edu.Institution == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section"><h2><span class="accent">//</span> Education</h2>`)
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

func creativeLanguages(doc cv.CVDocument) string {
	var b strings.Builder
	wrote := false
	for _, lang := range doc.Languages {
		if lang.Name == "" {
			continue
		}
		if !wrote {
			b.WriteString(`<section class="section"><h2><span class="accent">//</span> Languages</h2>`)
			wrote = true
		}
		b.WriteString(`<div class="language"><div class="language-row"><span>` + lang.Name + `</span>`)
		b.WriteString(`<span class="level-text">` + levelLabel(lang.Level, doc.Locale) + `</span></div>`)
		b.WriteString(`<div class="segments">` + levelSegments(lang.Level, "span", "seg", "seg-on") + `</div>`)
		b.WriteString(`</div>`)
	}
	if wrote {
		b.WriteString(`</section>`)
	}
	return b.String()
}

func creativeHobbies(doc cv.CVDocument) string {
	var chips []string
	for _, hobby := range doc.Hobbies {
		if hobby.Name != "" {
			chips = append(chips, `<span class="chip chip-alt">`+hobby.Name+`</span>`)
		}
	}
	if len(chips) == 0 {
		return ""
	}
	return `<section class="section"><h2><span class="accent">//</span> Interests</h2><div class="chips">` +
		strings.Join(chips, "") + `</div></section>`
}

func creativeCustomSections(doc cv.CVDocument) string {
	var b strings.Builder
	for _, section := range doc.CustomSections {
		body := customSectionBody(section)
		if section.Title == "" && body == "" {
			continue
		}
		b.WriteString(`<section class="section custom">`)
		if section.Title != "" {
			b.WriteString(`<h2><span class="accent">//</span> ` + section.Title + `</h2>`)
		}
		b.WriteString(body)
		b.WriteString(`</section>`)
	}
	return b.String()
}

func (Creative) Styles() cv.Stylesheet { return creativeCSS }

const creativeCSS = cv.Stylesheet(`
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
  font-family: 'Poppins', 'Segoe UI', sans-serif;
  font-size: 10.5pt;
  line-height: 1.55;
  color: #2d2a3f;
  background: #ffffff;
}

.hero {
  position: relative;
  overflow: hidden;
  background: linear-gradient(120deg, #7c3aed, #db2777);
  color: #ffffff;
  padding: 36px 32px;
}

.hero-shapes .shape {
  position: absolute;
  border-radius: 50%;
  opacity: 0.18;
  background: #ffffff;
  animation: drift 14s ease-in-out infinite alternate;
}

.shape.s1 { width: 180px; height: 180px; top: -60px; right: -40px; }
.shape.s2 { width: 90px; height: 90px; bottom: -30px; left: 18%; animation-delay: 3s; }
.shape.s3 { width: 50px; height: 50px; top: 20%; left: 55%; animation-delay: 6s; }

@keyframes drift {
  from { transform: translateY(0); }
  to { transform: translateY(14px); }
}

.hero-content {
  position: relative;
  display: flex;
  align-items: center;
  gap: 24px;
}

.photo {
  width: 104px;
  height: 104px;
  border-radius: 24px;
  object-fit: cover;
  border: 3px solid rgba(255, 255, 255, 0.7);
}

.hero .name {
  font-size: 23pt;
  font-weight: 700;
}

.hero .title {
  font-size: 12pt;
  opacity: 0.9;
  margin-top: 2px;
}

.hero .contact {
  font-size: 9pt;
  opacity: 0.85;
  margin-top: 10px;
}

.hero-link {
  color: #ffffff;
  text-decoration: none;
}

.body {
  padding: 26px 32px;
}

.section {
  margin-bottom: 22px;
}

.section h2 {
  font-size: 12.5pt;
  font-weight: 600;
  margin-bottom: 10px;
}

.accent {
  color: #7c3aed;
  font-weight: 700;
}

.chips {
  display: flex;
  flex-wrap: wrap;
  gap: 6px;
}

.chip {
  background: #ede9fe;
  color: #6d28d9;
  border-radius: 999px;
  padding: 3px 12px;
  font-size: 9pt;
}

.chip-alt {
  background: #fce7f3;
  color: #be185d;
}

.timeline {
  border-left: 2px solid #ddd6fe;
  padding-left: 20px;
}

.timeline-entry {
  position: relative;
  margin-bottom: 16px;
}

.dot {
  position: absolute;
  left: -26px;
  top: 5px;
  width: 10px;
  height: 10px;
  border-radius: 50%;
  background: #7c3aed;
}

.timeline-entry .dates {
  font-size: 9pt;
  color: #a78bfa;
  font-weight: 600;
}

.timeline-entry h3, .entry h3, .card h3 {
  font-size: 11.5pt;
  font-weight: 600;
}

.org {
  color: #db2777;
  font-size: 10pt;
}

.desc {
  margin-top: 3px;
}

.achievements {
  margin: 5px 0 0 18px;
}

.cards {
  display: grid;
  grid-template-columns: 1fr 1fr;
  gap: 12px;
}

.card {
  background: #faf5ff;
  border-radius: 12px;
  padding: 12px 14px;
}

.card .dates, .entry .dates {
  font-size: 9pt;
  color: #8b5cf6;
}

.tech {
  font-size: 9pt;
  color: #6b7280;
  margin-top: 4px;
}

.card-link {
  color: #7c3aed;
  text-decoration: none;
}

.split {
  display: flex;
  gap: 24px;
}

.half {
  flex: 1;
}

.language {
  margin-bottom: 10px;
}

.language-row {
  display: flex;
  justify-content: space-between;
  font-size: 9.5pt;
  margin-bottom: 4px;
}

.level-text {
  color: #8b5cf6;
}

.segments {
  display: flex;
  gap: 4px;
}

.seg {
  width: 22px;
  height: 6px;
  border-radius: 3px;
  background: #ede9fe;
}

.seg-on {
  background: #7c3aed;
}

@media (max-width: 640px) {
  .hero-content { flex-direction: column; text-align: center; }
  .cards { grid-template-columns: 1fr; }
  .split { flex-direction: column; }
}

@media print {
  .hero-shapes { display: none; }
  .hero { background: #7c3aed; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  .chip, .card, .seg, .seg-on { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  .section, .timeline-entry, .card { page-break-inside: avoid; }
}
`)
