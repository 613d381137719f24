package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/talentscout/intake/internal/ai"
	"github.com/talentscout/intake/internal/extract"
	"github.com/talentscout/intake/internal/i18n"
	"github.com/talentscout/intake/internal/profile"
	"github.com/talentscout/intake/internal/questions"
	"github.com/talentscout/intake/internal/store"
)

// scriptedGenerator answers by prompt content so one stub can serve the
// extractor, the question generator, and the phrasing call at once.
type scriptedGenerator struct {
	extraction   string
	questionSet  string
	nextQuestion string
	err          error

	questionSetCalls int
	calls            int
}

func (g *scriptedGenerator) Generate(_ context.Context, messages []ai.Message, _ ai.Options) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}

	prompt := messages[len(messages)-1].Content
	switch {
	case strings.Contains(prompt, "technical interview questions"):
		g.questionSetCalls++
		return g.questionSet, nil
	case strings.Contains(prompt, "Missing information"):
		return g.nextQuestion, nil
	default:
		return g.extraction, nil
	}
}

const fullExtraction = `{
	"full_name": "Sarah Johnson",
	"email": "sarah.j@email.com",
	"phone": "+1-555-0123-456",
	"years_experience": 5,
	"desired_positions": ["full stack developer"],
	"current_location": "Austin",
	"tech_stack": ["Python", "React"]
}`

func newTestController(t *testing.T, gen ai.Generator, gw store.Gateway) *Controller {
	t.Helper()
	lang, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}

	return NewController(
		extract.NewHeuristics(nil),
		extract.NewLLMExtractor(gen, lang, 500, 0, nil),
		questions.NewGenerator(gen, lang, 3, 500, 0, nil),
		gen,
		gw,
		lang,
		500,
		nil,
	)
}

func TestFullConversationFlow(t *testing.T) {
	gen := &scriptedGenerator{
		extraction:  fullExtraction,
		questionSet: `["Q-one", "Q-two", "Q-three"]`,
	}
	gw := store.NewMemory()
	c := newTestController(t, gen, gw)
	s := NewSession("session-1")
	ctx := context.Background()

	greeting := c.Greet(ctx, s)
	if greeting == "" {
		t.Fatal("empty greeting")
	}
	if s.ProfileID == 0 {
		t.Fatal("greeting must create the profile row")
	}

	// One rich message completes the profile and starts the questions.
	reply := c.HandleMessage(ctx, s, "Hi, here is everything about me")
	if s.Phase != PhaseTechnicalQuestions {
		t.Fatalf("phase = %v, want technical_questions", s.Phase)
	}
	if !strings.Contains(reply, "Question 1 of 3:") || !strings.Contains(reply, "Q-one") {
		t.Errorf("reply missing first question: %q", reply)
	}

	// Three answers finish the session.
	reply = c.HandleMessage(ctx, s, "answer one")
	if s.QuestionIndex != 1 || !strings.Contains(reply, "Q-two") {
		t.Fatalf("index = %d, reply = %q", s.QuestionIndex, reply)
	}
	c.HandleMessage(ctx, s, "answer two")
	reply = c.HandleMessage(ctx, s, "answer three")

	if s.Phase != PhaseCompleted {
		t.Fatalf("phase = %v, want completed", s.Phase)
	}
	if !strings.Contains(reply, "Sarah Johnson") {
		t.Errorf("farewell should include the profile summary: %q", reply)
	}

	summary, err := gw.FetchProfileSummary(ctx, s.ProfileID)
	if err != nil {
		t.Fatalf("FetchProfileSummary: %v", err)
	}
	if len(summary.Questions) != 3 {
		t.Errorf("persisted %d questions, want 3", len(summary.Questions))
	}
	for i, qa := range summary.Questions {
		if !qa.Answered {
			t.Errorf("question %d not answered", i)
		}
	}
}

func TestQuestionSetGeneratedExactlyOnce(t *testing.T) {
	gen := &scriptedGenerator{
		extraction:  fullExtraction,
		questionSet: `["Q-one", "Q-two", "Q-three"]`,
	}
	c := newTestController(t, gen, store.NewMemory())
	s := NewSession("session-2")
	ctx := context.Background()

	c.Greet(ctx, s)
	c.HandleMessage(ctx, s, "everything at once")
	before := append([]string(nil), s.Questions...)

	c.HandleMessage(ctx, s, "my answer to the first question")

	if gen.questionSetCalls != 1 {
		t.Errorf("question set generated %d times, want 1", gen.questionSetCalls)
	}
	for i, q := range s.Questions {
		if q != before[i] {
			t.Errorf("question %d changed from %q to %q", i, before[i], q)
		}
	}
}

func TestIncompleteProfileAsksForMissingFields(t *testing.T) {
	gen := &scriptedGenerator{
		extraction:   `{"full_name": "Helen"}`,
		nextQuestion: "Could you share your email and phone number?",
	}
	c := newTestController(t, gen, store.NewMemory())
	s := NewSession("session-3")
	ctx := context.Background()

	c.Greet(ctx, s)
	reply := c.HandleMessage(ctx, s, "Helen")

	if s.Phase != PhaseInfoGathering {
		t.Fatalf("phase = %v, want info_gathering", s.Phase)
	}
	if reply != "Could you share your email and phone number?" {
		t.Errorf("reply = %q, want the phrased question", reply)
	}
}

func TestSingleMissingFieldUsesCannedPrompt(t *testing.T) {
	gen := &scriptedGenerator{extraction: `{}`}
	c := newTestController(t, gen, store.NewMemory())
	s := NewSession("session-4")
	ctx := context.Background()

	years := 5
	s.Profile = &profile.Candidate{
		FullName:         "Sarah Johnson",
		Email:            "sarah.j@email.com",
		Phone:            "+1-555-0123-456",
		YearsExperience:  &years,
		DesiredPositions: []string{"developer"},
		CurrentLocation:  "Austin",
	}

	lang, _ := i18n.New("en")
	reply := c.HandleMessage(ctx, s, "hmm")
	if reply != lang.Get(i18n.KeyNextTechStack) {
		t.Errorf("reply = %q, want the canned tech stack prompt", reply)
	}
}

func TestInlineUpdateKeepsQuestionIndex(t *testing.T) {
	gen := &scriptedGenerator{
		extraction:  fullExtraction,
		questionSet: `["Q-one", "Q-two", "Q-three"]`,
	}
	gw := store.NewMemory()
	c := newTestController(t, gen, gw)
	s := NewSession("session-5")
	ctx := context.Background()

	c.Greet(ctx, s)
	c.HandleMessage(ctx, s, "everything at once")
	c.HandleMessage(ctx, s, "answer one")

	indexBefore := s.QuestionIndex
	reply := c.HandleMessage(ctx, s, "please update my email to a@b.com")

	if s.Profile.Email != "a@b.com" {
		t.Errorf("email = %q, want a@b.com", s.Profile.Email)
	}
	if s.QuestionIndex != indexBefore {
		t.Errorf("index advanced from %d to %d on an update turn", indexBefore, s.QuestionIndex)
	}
	if !strings.Contains(reply, "Q-two") {
		t.Errorf("reply %q must re-present the pending question", reply)
	}

	// The update turn must not be recorded as the answer to Q-two.
	summary, err := gw.FetchProfileSummary(ctx, s.ProfileID)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Questions[indexBefore].Answered {
		t.Error("update turn was persisted as an answer")
	}
}

func TestTwoTurnUpdateFlow(t *testing.T) {
	gen := &scriptedGenerator{
		extraction:  fullExtraction,
		questionSet: `["Q-one", "Q-two", "Q-three"]`,
	}
	c := newTestController(t, gen, store.NewMemory())
	s := NewSession("session-6")
	ctx := context.Background()

	c.Greet(ctx, s)
	c.HandleMessage(ctx, s, "everything at once")

	lang, _ := i18n.New("en")
	reply := c.HandleMessage(ctx, s, "I need to change my location")
	if reply != lang.Get(i18n.KeyUpdateLocation) {
		t.Fatalf("reply = %q, want the location follow-up", reply)
	}
	if s.QuestionIndex != 0 {
		t.Errorf("index = %d after update request, want 0", s.QuestionIndex)
	}

	reply = c.HandleMessage(ctx, s, "Berlin")
	if s.Profile.CurrentLocation != "Berlin" {
		t.Errorf("location = %q, want Berlin", s.Profile.CurrentLocation)
	}
	if s.QuestionIndex != 0 {
		t.Errorf("index = %d after update value, want 0", s.QuestionIndex)
	}
	if !strings.Contains(reply, "Q-one") {
		t.Errorf("reply %q must re-present question one", reply)
	}
}

func TestEndKeywordEndsAnyPhase(t *testing.T) {
	for _, message := range []string{"bye", "I quit", "please stop", "goodbye then"} {
		gen := &scriptedGenerator{extraction: fullExtraction}
		c := newTestController(t, gen, store.NewMemory())
		s := NewSession("session-7")
		ctx := context.Background()

		c.Greet(ctx, s)
		callsBefore := gen.calls
		reply := c.HandleMessage(ctx, s, message)

		if s.Phase != PhaseCompleted {
			t.Errorf("%q: phase = %v, want completed", message, s.Phase)
		}
		if gen.calls != callsBefore {
			t.Errorf("%q: extraction ran on an end-keyword turn", message)
		}
		if reply == "" {
			t.Errorf("%q: empty farewell", message)
		}
	}
}

func TestModelFailureDegradesToCannedPrompt(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("model unavailable")}
	c := newTestController(t, gen, store.NewMemory())
	s := NewSession("session-8")
	ctx := context.Background()

	c.Greet(ctx, s)
	reply := c.HandleMessage(ctx, s, "helen")

	// Heuristics still captured the name; the turn continues without the
	// model and asks for the next missing field.
	if s.Profile.FullName != "helen" {
		t.Errorf("full name = %q, want helen", s.Profile.FullName)
	}
	lang, _ := i18n.New("en")
	if reply != lang.Get(i18n.KeyNextEmail) {
		t.Errorf("reply = %q, want the canned email prompt", reply)
	}
}

func TestScalarFieldsNeverChangeAcrossTurns(t *testing.T) {
	gen := &scriptedGenerator{
		extraction:   `{"full_name": "Changed Name", "email": "other@example.com"}`,
		nextQuestion: "And your phone number?",
	}
	c := newTestController(t, gen, store.NewMemory())
	s := NewSession("session-9")
	ctx := context.Background()

	c.Greet(ctx, s)
	s.Profile.SetFullName("Original Name")
	s.Profile.SetEmail("original@example.com")

	c.HandleMessage(ctx, s, "some message")
	c.HandleMessage(ctx, s, "another message")

	if s.Profile.FullName != "Original Name" {
		t.Errorf("full name changed to %q", s.Profile.FullName)
	}
	if s.Profile.Email != "original@example.com" {
		t.Errorf("email changed to %q", s.Profile.Email)
	}
}
