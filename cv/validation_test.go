package cv

import "testing"

func TestValidationScoreFormula(t *testing.T) {
	tests := []struct {
		errs     int
		warnings int
		want     int
	}{
		{errs: 0, warnings: 0, want: 100},
		{errs: 1, warnings: 2, want: 70},
		{errs: 2, warnings: 0, want: 60},
		{errs: 0, warnings: 3, want: 85},
		{errs: 5, warnings: 4, want: 0},
		{errs: 10, warnings: 10, want: 0},
	}

	for _, tc := range tests {
		errs := make([]string, tc.errs)
		for i := range errs {
			errs[i] = "err"
		}
		warnings := make([]string, tc.warnings)
		for i := range warnings {
			warnings[i] = "warn"
		}

		result := NewValidationResult(errs, warnings)
		if result.Score != tc.want {
			t.Fatalf("%d errors, %d warnings: expected score %d, got %d", tc.errs, tc.warnings, tc.want, result.Score)
		}
		if result.IsValid != (tc.errs == 0) {
			t.Fatalf("%d errors: expected isValid=%v", tc.errs, tc.errs == 0)
		}
	}
}

func TestValidationWarningsNeverInvalidate(t *testing.T) {
	result := NewValidationResult(nil, []string{"a", "b", "c", "d", "e", "f"})
	if !result.IsValid {
		t.Fatalf("expected warnings-only result to stay valid")
	}
}

func TestValidationResultSlicesNonNil(t *testing.T) {
	result := NewValidationResult(nil, nil)
	if result.Errors == nil || result.Warnings == nil {
		t.Fatalf("expected non-nil slices, got %+v", result)
	}
}

func TestValidateShape(t *testing.T) {
	missing := ValidateShape(CVDocument{})
	if missing.IsValid {
		t.Fatalf("expected missing first name to fail shape validation")
	}

	spaces := ValidateShape(CVDocument{PersonalInfo: PersonalInfo{FirstName: "   "}})
	if spaces.IsValid {
		t.Fatalf("expected whitespace-only first name to fail shape validation")
	}

	ok := ValidateShape(CVDocument{PersonalInfo: PersonalInfo{FirstName: "Jane"}})
	if !ok.IsValid {
		t.Fatalf("expected valid shape, got %+v", ok)
	}
}
