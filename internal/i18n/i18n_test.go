package i18n

import (
	"strings"
	"testing"

	"github.com/talentscout/intake/internal/profile"
)

func TestNewRejectsUnknownLanguage(t *testing.T) {
	t.Parallel()

	if _, err := New("xx"); err == nil {
		t.Fatalf("expected error for unsupported language")
	}

	m, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Language() != DefaultLanguage {
		t.Fatalf("expected default language, got %q", m.Language())
	}
}

func TestBundlesCoverAllKeys(t *testing.T) {
	t.Parallel()

	for code, b := range bundles {
		for key := range english {
			if _, ok := b[key]; !ok {
				t.Errorf("language %q is missing key %q", code, key)
			}
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	t.Parallel()

	m, err := New("en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	intro := m.TechIntro("Helen", []string{"Python", "SQL"})
	if !strings.Contains(intro, "Helen") || !strings.Contains(intro, "Python, SQL") {
		t.Fatalf("placeholders not substituted: %q", intro)
	}

	q := m.QuestionNumber(2, 4)
	if q != "Question 2 of 4:" {
		t.Fatalf("unexpected question header: %q", q)
	}

	fallback := m.FallbackQuestions("Go")
	if len(fallback) != 3 {
		t.Fatalf("expected 3 fallback questions, got %d", len(fallback))
	}
	if !strings.Contains(fallback[0], "Go") {
		t.Fatalf("expected tech placeholder in first fallback question: %q", fallback[0])
	}
}

func TestFieldPrompts(t *testing.T) {
	t.Parallel()

	m, _ := New("de")

	fields := []profile.FieldName{
		profile.FieldFullName, profile.FieldEmail, profile.FieldPhone,
		profile.FieldYearsExperience, profile.FieldPositions,
		profile.FieldLocation, profile.FieldTechStack,
	}

	seen := make(map[string]bool)
	for _, field := range fields {
		prompt := m.FieldPrompt(field)
		if prompt == "" {
			t.Fatalf("empty prompt for field %q", field)
		}
		if seen[prompt] {
			t.Fatalf("duplicate prompt for field %q", field)
		}
		seen[prompt] = true
	}
}
