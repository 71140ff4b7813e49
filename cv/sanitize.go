package cv

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// supportedLocales are the locales templates can format dates and labels in.
var supportedLocales = map[string]struct{}{
	"en": {}, "es": {}, "fr": {}, "de": {}, "it": {}, "pt": {},
}

// SanitizedDocument wraps a CVDocument that has passed the sanitization
// boundary. Only Sanitize constructs one, so anything accepting this type
// can interpolate fields into markup without further escaping.
type SanitizedDocument struct {
	doc CVDocument
}

// Doc returns the sanitized document value.
func (d SanitizedDocument) Doc() CVDocument {
	return d.doc
}

// Sanitize returns a deep sanitized copy of the document. It is pure and
// idempotent: sanitizing already-sanitized data is a no-op.
func Sanitize(doc CVDocument) SanitizedDocument {
	out := CVDocument{
		PersonalInfo: PersonalInfo{
			FirstName: cleanText(doc.PersonalInfo.FirstName),
			LastName:  cleanText(doc.PersonalInfo.LastName),
			Email:     cleanEmail(doc.PersonalInfo.Email),
			Phone:     cleanText(doc.PersonalInfo.Phone),
			Address:   cleanText(doc.PersonalInfo.Address),
			Title:     cleanText(doc.PersonalInfo.Title),
			LinkedIn:  cleanURL(doc.PersonalInfo.LinkedIn),
			Website:   cleanURL(doc.PersonalInfo.Website),
			Photo:     cleanURL(doc.PersonalInfo.Photo),
		},
		Summary: cleanText(doc.Summary),
		Locale:  normalizeLocale(doc.Locale),
	}

	out.Experiences = make([]Experience, 0, len(doc.Experiences))
	for _, exp := range doc.Experiences {
		out.Experiences = append(out.Experiences, Experience{
			Position:     cleanText(exp.Position),
			Company:      cleanText(exp.Company),
			StartDate:    cleanText(exp.StartDate),
			EndDate:      cleanText(exp.EndDate),
			Current:      exp.Current,
			Description:  cleanText(exp.Description),
			Achievements: cleanTextSlice(exp.Achievements),
		})
	}

	out.Education = make([]Education, 0, len(doc.Education))
	for _, edu := range doc.Education {
		out.Education = append(out.Education, Education{
			Degree:      cleanText(edu.Degree),
			Institution: cleanText(edu.Institution),
			StartDate:   cleanText(edu.StartDate),
			EndDate:     cleanText(edu.EndDate),
			Description: cleanText(edu.Description),
		})
	}

	out.Skills = cleanTextSlice(doc.Skills)

	out.Languages = make([]Language, 0, len(doc.Languages))
	for _, lang := range doc.Languages {
		out.Languages = append(out.Languages, Language{
			Name:          cleanText(lang.Name),
			Level:         ClampLevel(lang.Level),
			Certification: cleanText(lang.Certification),
		})
	}

	out.Projects = make([]Project, 0, len(doc.Projects))
	for _, project := range doc.Projects {
		out.Projects = append(out.Projects, Project{
			Name:         cleanText(project.Name),
			Description:  cleanText(project.Description),
			Technologies: cleanText(project.Technologies),
			URL:          cleanURL(project.URL),
			StartDate:    cleanText(project.StartDate),
			EndDate:      cleanText(project.EndDate),
			Current:      project.Current,
		})
	}

	out.Hobbies = make([]Hobby, 0, len(doc.Hobbies))
	for _, hobby := range doc.Hobbies {
		out.Hobbies = append(out.Hobbies, Hobby{
			Name:        cleanText(hobby.Name),
			Description: cleanText(hobby.Description),
		})
	}

	out.CustomSections = make([]CustomSection, 0, len(doc.CustomSections))
	for _, section := range doc.CustomSections {
		out.CustomSections = append(out.CustomSections, CustomSection{
			Title:   cleanText(section.Title),
			Type:    normalizeSectionType(section.Type),
			Content: cleanText(section.Content),
			Items:   cleanTextSlice(section.Items),
		})
	}

	return SanitizedDocument{doc: out}
}

// ClampLevel forces a language level into the [1,5] range. Zero and
// negative values (including missing JSON fields) clamp to 1.
func ClampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}

func cleanText(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(trimmed))
}

func cleanTextSlice(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, cleanText(value))
	}
	return out
}

func cleanEmail(value string) string {
	email := strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(email) {
		return ""
	}
	return email
}

func cleanURL(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	if parsed.Host == "" {
		return ""
	}
	return parsed.String()
}

func normalizeSectionType(value SectionType) SectionType {
	switch value {
	case SectionText, SectionList, SectionDescription:
		return value
	default:
		return SectionText
	}
}

func normalizeLocale(value string) string {
	locale := strings.ToLower(strings.TrimSpace(value))
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		locale = locale[:idx]
	}
	if _, ok := supportedLocales[locale]; !ok {
		return "en"
	}
	return locale
}

// textSanitizer strips every element and entity-escapes residual markup
// characters. Parsing re-normalizes existing entities, which keeps the
// policy idempotent.
func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
