package cv

import "strings"

// ValidationResult reports template or shape validation outcomes. Errors
// make the result invalid; warnings are advisory only.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Score    int      `json:"score"`
}

// NewValidationResult builds a result and computes its score:
// 100 minus 20 per error minus 5 per warning, floored at zero.
func NewValidationResult(errs, warnings []string) ValidationResult {
	if errs == nil {
		errs = []string{}
	}
	if warnings == nil {
		warnings = []string{}
	}

	score := 100 - 20*len(errs) - 5*len(warnings)
	if score < 0 {
		score = 0
	}

	return ValidationResult{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
		Score:    score,
	}
}

// ValidateShape performs the generic structural checks every generation
// request must pass before a template is even resolved.
func ValidateShape(doc CVDocument) ValidationResult {
	var errs []string
	if strings.TrimSpace(doc.PersonalInfo.FirstName) == "" {
		errs = append(errs, "personalInfo.firstName is required")
	}
	return NewValidationResult(errs, nil)
}
