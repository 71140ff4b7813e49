package templates

import (
	"strings"
	"testing"

	"github.com/goliatone/go-cvgen/cv"
)

func sampleDocument() cv.CVDocument {
	return cv.CVDocument{
		PersonalInfo: cv.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Title:     "Platform Engineer",
			Email:     "jane.doe@example.com",
			Phone:     "+1 555 0100",
			Address:   "Lisbon, Portugal",
			Website:   "https://janedoe.dev",
			LinkedIn:  "https://linkedin.com/in/janedoe",
		},
		Summary: "Engineer with a decade of experience running large rendering fleets.",
		Experiences: []cv.Experience{
			{
				Position:     "Staff Engineer",
				Company:      "Acme Corp",
				StartDate:    "2021-03-01",
				EndDate:      "2099-06-01",
				Current:      true,
				Description:  "Owns the document pipeline.",
				Achievements: []string{"Cut render latency in half", "Introduced canary deploys"},
			},
			{
				Position:    "Engineer",
				Company:     "Beta LLC",
				StartDate:   "2017-01-01",
				EndDate:     "2021-02-01",
				Description: "Backend services.",
			},
		},
		Education: []cv.Education{
			{Degree: "BSc Computer Science", Institution: "Tech University", StartDate: "2012", EndDate: "2016"},
		},
		Skills: []string{"Go", "Distributed Systems", "PostgreSQL", "Kubernetes", "CDP"},
		Languages: []cv.Language{
			{Name: "English", Level: 5},
			{Name: "Portuguese", Level: 3},
		},
		Projects: []cv.Project{
			{Name: "renderd", Description: "Headless rendering daemon.", URL: "https://github.com/janedoe/renderd", Technologies: "Go, CDP"},
		},
		Hobbies: []cv.Hobby{{Name: "Climbing"}},
		CustomSections: []cv.CustomSection{
			{Title: "Certifications", Type: cv.SectionList, Items: []string{"CKA", "AWS SA"}},
		},
		Locale: "en",
	}
}

func TestBuiltInInfosAreUniqueAndComplete(t *testing.T) {
	all := All()
	if len(all) != 8 {
		t.Fatalf("expected 8 built-in templates, got %d", len(all))
	}

	seen := map[string]bool{}
	for _, tmpl := range all {
		info := tmpl.Info()
		if info.ID == "" || info.Name == "" || info.Category == "" || info.Version == "" {
			t.Fatalf("incomplete info: %+v", info)
		}
		if seen[info.ID] {
			t.Fatalf("duplicate template id %q", info.ID)
		}
		seen[info.ID] = true
	}

	for _, id := range []string{"executive", "elegant", "creative"} {
		registry := NewRegistry()
		tmpl, ok := registry.Get(id)
		if !ok {
			t.Fatalf("missing template %s", id)
		}
		if !tmpl.Info().Premium {
			t.Fatalf("expected %s to be premium", id)
		}
	}
}

func TestNewRegistryLoadsEverything(t *testing.T) {
	registry := NewRegistry()
	if registry.Count() != len(All()) {
		t.Fatalf("expected %d templates, got %d", len(All()), registry.Count())
	}
	infos := registry.List()
	if infos[0].ID != "classic" {
		t.Fatalf("expected classic first, got %s", infos[0].ID)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	sd := cv.Sanitize(sampleDocument())
	for _, tmpl := range All() {
		first := tmpl.Render(sd)
		second := tmpl.Render(sd)
		if first != second {
			t.Fatalf("%s: render is not deterministic", tmpl.Info().ID)
		}
		if first == "" {
			t.Fatalf("%s: empty render", tmpl.Info().ID)
		}
	}
}

func TestRenderIncludesNameAndStyles(t *testing.T) {
	sd := cv.Sanitize(sampleDocument())
	for _, tmpl := range All() {
		id := tmpl.Info().ID
		out := string(tmpl.Render(sd))
		if !strings.Contains(out, "Jane") || !strings.Contains(out, "Doe") {
			t.Fatalf("%s: rendered output missing candidate name", id)
		}

		styles := string(tmpl.Styles())
		if styles == "" {
			t.Fatalf("%s: empty stylesheet", id)
		}
		if !strings.Contains(styles, "@media print") {
			t.Fatalf("%s: stylesheet missing print rules", id)
		}
	}
}

func TestRenderCurrentRoleShowsPresentNotEndDate(t *testing.T) {
	sd := cv.Sanitize(sampleDocument())
	for _, tmpl := range All() {
		out := string(tmpl.Render(sd))
		if !strings.Contains(out, "Present") {
			t.Fatalf("%s: expected open role to render the present label", tmpl.Info().ID)
		}
		if strings.Contains(out, "Jun 2099") {
			t.Fatalf("%s: stored end date leaked for a current role", tmpl.Info().ID)
		}
	}
}

func TestRenderSurvivesMinimalDocument(t *testing.T) {
	minimal := cv.CVDocument{PersonalInfo: cv.PersonalInfo{FirstName: "Jane", LastName: "Doe"}}
	sd := cv.Sanitize(minimal)
	for _, tmpl := range All() {
		out := string(tmpl.Render(sd))
		if !strings.Contains(out, "Jane") {
			t.Fatalf("%s: minimal render missing name: %q", tmpl.Info().ID, out)
		}
	}
}

func TestRenderAfterSanitizeCarriesNoActiveMarkup(t *testing.T) {
	doc := sampleDocument()
	doc.Summary = `Engineer <script>alert("x")</script> and <b>bold</b> claims.`
	doc.Skills = append(doc.Skills, `<img src=x onerror=alert(1)>`)
	sd := cv.Sanitize(doc)

	for _, tmpl := range All() {
		out := string(tmpl.Render(sd))
		if strings.Contains(out, "<script") {
			t.Fatalf("%s: script element survived sanitization", tmpl.Info().ID)
		}
		if strings.Contains(out, "onerror=") {
			t.Fatalf("%s: event handler survived sanitization", tmpl.Info().ID)
		}
		if strings.Contains(out, "<b>bold</b>") {
			t.Fatalf("%s: inline formatting survived sanitization", tmpl.Info().ID)
		}
	}
}

func TestEveryTemplateRequiresNames(t *testing.T) {
	sd := cv.Sanitize(cv.CVDocument{Summary: "anonymous"})
	for _, tmpl := range All() {
		result := tmpl.Validate(sd)
		if result.IsValid {
			t.Fatalf("%s: expected nameless document to be rejected", tmpl.Info().ID)
		}
	}
}

func TestExecutiveRequiresExperience(t *testing.T) {
	doc := sampleDocument()
	doc.Experiences = nil
	result := NewExecutive().Validate(cv.Sanitize(doc))
	if result.IsValid {
		t.Fatalf("expected executive to reject an empty work history")
	}

	full := NewExecutive().Validate(cv.Sanitize(sampleDocument()))
	if !full.IsValid {
		t.Fatalf("expected full document to pass: %+v", full)
	}
}

func TestTemplatePoliciesWarnWithoutInvalidating(t *testing.T) {
	doc := cv.CVDocument{
		PersonalInfo: cv.PersonalInfo{FirstName: "Jane", LastName: "Doe"},
		Experiences:  []cv.Experience{{Position: "Engineer", Company: "Acme"}},
	}
	sd := cv.Sanitize(doc)

	for _, tmpl := range All() {
		result := tmpl.Validate(sd)
		if !result.IsValid {
			t.Fatalf("%s: expected sparse-but-named document to stay valid: %+v", tmpl.Info().ID, result)
		}
	}
}

func TestLocalizedRender(t *testing.T) {
	doc := sampleDocument()
	doc.Locale = "es"
	sd := cv.Sanitize(doc)

	out := string(NewClassic().Render(sd))
	if !strings.Contains(out, "Presente") {
		t.Fatalf("expected Spanish present label, got output without it")
	}
}
