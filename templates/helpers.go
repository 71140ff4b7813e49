package templates

import (
	"html"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/goodsign/monday"

	"github.com/goliatone/go-cvgen/cv"
)

// levelLabels maps a locale to the fixed five-step proficiency labels,
// index 0 being level 1.
var levelLabels = map[string][5]string{
	"en": {"Beginner", "Elementary", "Intermediate", "Advanced", "Native/Expert"},
	"es": {"Principiante", "Elemental", "Intermedio", "Avanzado", "Nativo/Experto"},
	"fr": {"Débutant", "Élémentaire", "Intermédiaire", "Avancé", "Natif/Expert"},
	"de": {"Anfänger", "Grundkenntnisse", "Mittelstufe", "Fortgeschritten", "Muttersprache/Experte"},
	"it": {"Principiante", "Elementare", "Intermedio", "Avanzato", "Madrelingua/Esperto"},
	"pt": {"Iniciante", "Elementar", "Intermediário", "Avançado", "Nativo/Especialista"},
}

var presentLabels = map[string]string{
	"en": "Present",
	"es": "Presente",
	"fr": "Présent",
	"de": "Heute",
	"it": "Presente",
	"pt": "Presente",
}

var mondayLocales = map[string]monday.Locale{
	"en": monday.LocaleEnUS,
	"es": monday.LocaleEsES,
	"fr": monday.LocaleFrFR,
	"de": monday.LocaleDeDE,
	"it": monday.LocaleItIT,
	"pt": monday.LocalePtPT,
}

// levelLabel returns the human label for a 1..5 language level. Zero or
// missing levels are treated as level 1.
func levelLabel(level int, locale string) string {
	labels, ok := levelLabels[locale]
	if !ok {
		labels = levelLabels["en"]
	}
	return labels[cv.ClampLevel(level)-1]
}

// levelPercent maps a level to its proportional fill across 5 segments.
func levelPercent(level int) int {
	return cv.ClampLevel(level) * 20
}

// levelSegments renders count markers, the first filled markers carrying
// the "on" class. Used by dot and bar style language meters.
func levelSegments(level int, tag, baseClass, onClass string) string {
	filled := cv.ClampLevel(level)
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		class := baseClass
		if i <= filled {
			class += " " + onClass
		}
		b.WriteString("<" + tag + " class=\"" + class + "\"></" + tag + ">")
	}
	return b.String()
}

// presentLabel returns the localized open-ended date label.
func presentLabel(locale string) string {
	if label, ok := presentLabels[locale]; ok {
		return label
	}
	return presentLabels["en"]
}

// formatMonthYear renders a stored date as "Jan 2006" in the document
// locale. Unparseable values pass through unchanged.
func formatMonthYear(value, locale string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parsed, ok := parseDate(value)
	if !ok {
		return value
	}
	loc, known := mondayLocales[locale]
	if !known {
		loc = monday.LocaleEnUS
	}
	return monday.Format(parsed, "Jan 2006", loc)
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006", time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// dateRange formats a start/end pair. An open entry (current=true) always
// renders the localized present label, regardless of any stored end date.
func dateRange(start, end string, current bool, locale string) string {
	from := formatMonthYear(start, locale)
	var to string
	if current {
		to = presentLabel(locale)
	} else {
		to = formatMonthYear(end, locale)
	}

	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	default:
		return from + " – " + to
	}
}

// attr escapes a value for use inside a quoted HTML attribute. Sanitized
// text is already entity-safe; URL fields are not, so attribute positions
// always go through this.
func attr(value string) string {
	return html.EscapeString(value)
}

// itoa is a short alias kept for dense style-building call sites.
func itoa(n int) string {
	return strconv.Itoa(n)
}

// fullName joins the sanitized first and last name.
func fullName(info cv.PersonalInfo) string {
	return strings.TrimSpace(strings.TrimSpace(info.FirstName) + " " + strings.TrimSpace(info.LastName))
}

// initials returns up to two uppercase initials for monogram headers.
func initials(info cv.PersonalInfo) string {
	var b strings.Builder
	for _, name := range []string{info.FirstName, info.LastName} {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(trimmed)
		if first == utf8.RuneError {
			continue
		}
		b.WriteRune(unicode.ToUpper(first))
	}
	return b.String()
}

// hasExperiences reports whether any experience entry carries content.
func hasExperiences(doc cv.CVDocument) bool {
	for _, exp := range doc.Experiences {
		if exp.Position != "" || exp.Company != "" || exp.Description != "" {
			return true
		}
	}
	return false
}

// nonEmpty filters blank strings out of a slice.
func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			out = append(out, value)
		}
	}
	return out
}

// listItems renders each non-empty value as an <li>.
func listItems(values []string) string {
	var b strings.Builder
	for _, value := range nonEmpty(values) {
		b.WriteString("<li>")
		b.WriteString(value)
		b.WriteString("</li>")
	}
	return b.String()
}

// customSectionBody renders a custom section's content by type.
func customSectionBody(section cv.CustomSection) string {
	switch section.Type {
	case cv.SectionList:
		items := listItems(section.Items)
		if items == "" {
			return ""
		}
		return "<ul>" + items + "</ul>"
	case cv.SectionDescription:
		var b strings.Builder
		if section.Content != "" {
			b.WriteString("<p>" + section.Content + "</p>")
		}
		for _, item := range nonEmpty(section.Items) {
			b.WriteString("<p>" + item + "</p>")
		}
		return b.String()
	default:
		if section.Content == "" {
			return ""
		}
		return "<p>" + section.Content + "</p>"
	}
}

// requireNames is the one rule every template shares: a CV must carry a
// non-empty first and last name.
func requireNames(doc cv.CVDocument) []string {
	var errs []string
	if strings.TrimSpace(doc.PersonalInfo.FirstName) == "" {
		errs = append(errs, "first name is required")
	}
	if strings.TrimSpace(doc.PersonalInfo.LastName) == "" {
		errs = append(errs, "last name is required")
	}
	return errs
}

// contactLine joins contact fragments with a separator, skipping blanks.
func contactLine(sep string, parts ...string) string {
	return strings.Join(nonEmpty(parts), sep)
}

// linkAnchor renders an anchor for an already-validated absolute URL,
// displaying the host-and-path form without the scheme.
func linkAnchor(rawURL, class string) string {
	if rawURL == "" {
		return ""
	}
	display := strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")
	display = strings.TrimSuffix(display, "/")
	classAttr := ""
	if class != "" {
		classAttr = ` class="` + class + `"`
	}
	return `<a` + classAttr + ` href="` + attr(rawURL) + `">` + attr(display) + `</a>`
}

// mailtoAnchor renders a mailto link for a validated email address.
func mailtoAnchor(email, class string) string {
	if email == "" {
		return ""
	}
	classAttr := ""
	if class != "" {
		classAttr = ` class="` + class + `"`
	}
	return `<a` + classAttr + ` href="mailto:` + attr(email) + `">` + email + `</a>`
}
