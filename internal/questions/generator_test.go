package questions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/talentscout/intake/internal/ai"
	"github.com/talentscout/intake/internal/i18n"
	"github.com/talentscout/intake/internal/profile"
)

type stubGenerator struct {
	response string
	err      error

	lastOpts ai.Options
	calls    int
}

func (s *stubGenerator) Generate(_ context.Context, _ []ai.Message, opts ai.Options) (string, error) {
	s.calls++
	s.lastOpts = opts
	return s.response, s.err
}

func testCandidate() *profile.Candidate {
	years := 5
	return &profile.Candidate{
		FullName:         "Sarah Johnson",
		YearsExperience:  &years,
		DesiredPositions: []string{"full stack developer"},
		TechStack:        []string{"Python", "React", "PostgreSQL"},
	}
}

func newTestGenerator(t *testing.T, gen ai.Generator, count int) *Generator {
	t.Helper()
	lang, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}
	return NewGenerator(gen, lang, count, 500, 0, nil)
}

func TestGenerateParsesArray(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + `["What is a Python decorator?", "How does React reconcile the DOM?", "When would you add an index in PostgreSQL?"]` + "\n```"}

	g := newTestGenerator(t, gen, 3)
	got := g.Generate(context.Background(), testCandidate())

	if len(got) != 3 {
		t.Fatalf("got %d questions, want 3", len(got))
	}
	if got[0] != "What is a Python decorator?" {
		t.Errorf("first question = %q", got[0])
	}
	if gen.lastOpts.Temperature != questionsTemperature {
		t.Errorf("temperature = %v, want %v", gen.lastOpts.Temperature, questionsTemperature)
	}
}

func TestGenerateParsesWrappedObject(t *testing.T) {
	gen := &stubGenerator{response: `{"questions": ["Q1", "Q2", "Q3"]}`}

	g := newTestGenerator(t, gen, 3)
	got := g.Generate(context.Background(), testCandidate())

	if len(got) != 3 || got[2] != "Q3" {
		t.Fatalf("got %v", got)
	}
}

func TestGenerateTruncatesToCount(t *testing.T) {
	gen := &stubGenerator{response: `["Q1", "Q2", "Q3", "Q4", "Q5"]`}

	g := newTestGenerator(t, gen, 3)
	got := g.Generate(context.Background(), testCandidate())

	if len(got) != 3 {
		t.Fatalf("got %d questions, want 3", len(got))
	}
}

func TestGenerateFallbackOnModelError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model unavailable")}

	g := newTestGenerator(t, gen, 3)
	got := g.Generate(context.Background(), testCandidate())

	if len(got) != 3 {
		t.Fatalf("fallback set has %d questions, want 3", len(got))
	}
	if !strings.Contains(got[0], "Python") {
		t.Errorf("fallback first question %q should mention the primary technology", got[0])
	}
}

func TestGenerateFallbackOnUnusableResponse(t *testing.T) {
	gen := &stubGenerator{response: "Sorry, I cannot help with that."}

	g := newTestGenerator(t, gen, 3)
	got := g.Generate(context.Background(), testCandidate())

	if len(got) != 3 {
		t.Fatalf("fallback set has %d questions, want 3", len(got))
	}
}

func TestFormatNumbersFromOne(t *testing.T) {
	lang, err := i18n.New("en")
	if err != nil {
		t.Fatal(err)
	}

	got := Format(lang, 0, 3, "What is a goroutine?")
	want := "Question 1 of 3: What is a goroutine?"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
