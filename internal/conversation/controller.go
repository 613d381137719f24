package conversation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/talentscout/intake/internal/ai"
	"github.com/talentscout/intake/internal/extract"
	"github.com/talentscout/intake/internal/i18n"
	"github.com/talentscout/intake/internal/profile"
	"github.com/talentscout/intake/internal/questions"
	"github.com/talentscout/intake/internal/store"
)

const defaultTemperature = 0.7

// endKeywords terminate the conversation whenever they appear in a message,
// regardless of phase.
var endKeywords = []string{"exit", "quit", "stop", "bye", "goodbye", "cancel"}

// updateKeywords signal intent to correct profile information during the
// technical question phase. They only count together with an info keyword.
var updateKeywords = []string{"update", "change", "modify", "correct", "edit"}

var infoKeywords = []string{"location", "email", "phone", "name", "position", "tech stack"}

// Controller processes one chat turn at a time for a session.
type Controller struct {
	heuristics *extract.Heuristics
	extractor  *extract.LLMExtractor
	questions  *questions.Generator
	generator  ai.Generator
	gateway    store.Gateway
	lang       *i18n.Manager
	logger     *zap.Logger
	maxTokens  int32
}

// NewController wires the extraction pipeline, the question generator, and
// the persistence gateway into a turn handler.
func NewController(
	heuristics *extract.Heuristics,
	extractor *extract.LLMExtractor,
	qgen *questions.Generator,
	generator ai.Generator,
	gateway store.Gateway,
	lang *i18n.Manager,
	maxTokens int32,
	logger *zap.Logger,
) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		heuristics: heuristics,
		extractor:  extractor,
		questions:  qgen,
		generator:  generator,
		gateway:    gateway,
		lang:       lang,
		logger:     logger,
		maxTokens:  maxTokens,
	}
}

// Greet opens the conversation: the profile row is created up front so the
// greeting is part of the recorded transcript.
func (c *Controller) Greet(ctx context.Context, s *Session) string {
	c.persistProfile(ctx, s)

	greeting := c.lang.Get(i18n.KeyGreeting)
	c.appendTranscript(ctx, s, store.RoleAssistant, greeting)
	return greeting
}

// HandleMessage processes one user turn and returns the assistant reply.
// All failures degrade to safe defaults; the session keeps going on the
// in-memory state even when persistence or the model misbehaves.
func (c *Controller) HandleMessage(ctx context.Context, s *Session, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return c.lang.Get(i18n.KeyErrorProcessing)
	}

	c.appendTranscript(ctx, s, store.RoleUser, message)

	// End-keyword detection precedes everything, including extraction.
	if containsAny(message, endKeywords) {
		s.Phase = PhaseCompleted
		return c.reply(ctx, s, c.lang.Get(i18n.KeyFarewell))
	}

	var response string
	switch s.Phase {
	case PhaseGreeting, PhaseInfoGathering:
		response = c.handleInfoGathering(ctx, s, message)
	case PhaseTechnicalQuestions:
		response = c.handleTechnicalQuestions(ctx, s, message)
	default:
		response = c.lang.Get(i18n.KeyFarewell)
	}

	return c.reply(ctx, s, response)
}

func (c *Controller) handleInfoGathering(ctx context.Context, s *Session, message string) string {
	s.Phase = PhaseInfoGathering

	c.heuristics.Apply(message, s.Profile)

	extractionFailed := false
	if err := c.extractor.Extract(ctx, message, s.Profile); err != nil {
		extractionFailed = true
		c.logger.Warn("llm extraction failed, continuing on heuristics", zap.Error(err))
	}

	c.persistProfile(ctx, s)

	if s.Profile.IsComplete() {
		return c.beginTechnicalQuestions(ctx, s)
	}

	missing := s.Profile.MissingFields()
	if len(missing) == 1 {
		return c.lang.FieldPrompt(missing[0])
	}

	// After a failed model call, a second one this turn is pointless.
	if extractionFailed {
		return c.lang.FieldPrompt(missing[0])
	}

	return c.phraseNextQuestion(ctx, missing)
}

// beginTechnicalQuestions generates the question set (the only time it is
// ever generated for the session) and presents the intro plus question one.
func (c *Controller) beginTechnicalQuestions(ctx context.Context, s *Session) string {
	s.Phase = PhaseTechnicalQuestions
	s.Questions = c.questions.Generate(ctx, s.Profile)
	s.QuestionIndex = 0

	if s.ProfileID != 0 {
		if _, err := c.gateway.SaveQuestionSet(ctx, s.ProfileID, s.Questions); err != nil {
			c.logger.Warn("failed to persist question set", zap.Error(err))
		}
	}

	intro := c.lang.TechIntro(s.Profile.FullName, s.Profile.TechStack)
	first := questions.Format(c.lang, 0, len(s.Questions), s.Questions[0])
	return intro + "\n\n" + first
}

func (c *Controller) handleTechnicalQuestions(ctx context.Context, s *Session, message string) string {
	if s.mode == awaitingUpdateValue {
		return c.applyUpdate(ctx, s, message)
	}

	if isUpdateIntent(message) {
		field := referencedField(message)

		// The request itself may already carry the new value, as in
		// "please update my email to a@b.com". Apply it right away instead
		// of asking a follow-up.
		switch field {
		case profile.FieldEmail:
			if email := extract.FirstEmail(message); email != "" {
				s.Profile.Overwrite(profile.FieldEmail, email)
				return c.confirmUpdate(ctx, s)
			}
		case profile.FieldPhone:
			if phone := extract.FirstPhone(message); phone != "" {
				s.Profile.Overwrite(profile.FieldPhone, phone)
				return c.confirmUpdate(ctx, s)
			}
		}

		s.enterUpdateMode(field)
		return c.updatePrompt(field)
	}

	// A plain message answers the pending question.
	if s.ProfileID != 0 {
		if err := c.gateway.SaveAnswer(ctx, s.ProfileID, s.QuestionIndex, message); err != nil {
			c.logger.Warn("failed to persist answer",
				zap.Int("question_index", s.QuestionIndex), zap.Error(err))
		}
	}
	s.QuestionIndex++

	if s.QuestionIndex < len(s.Questions) {
		next := questions.Format(c.lang, s.QuestionIndex, len(s.Questions), s.Questions[s.QuestionIndex])
		return c.lang.Get(i18n.KeyThankYouAnswer) + "\n\n" + next
	}

	s.Phase = PhaseCompleted
	return c.lang.Get(i18n.KeyFarewell) + "\n\n" + c.profileSummary(s.Profile)
}

// applyUpdate consumes the message as the new value for the field named in
// the preceding update request, then re-presents the pending question. The
// question index never moves here.
func (c *Controller) applyUpdate(ctx context.Context, s *Session, message string) string {
	switch s.updateField {
	case profile.FieldLocation:
		s.Profile.Overwrite(profile.FieldLocation, message)
	case profile.FieldEmail:
		if email := extract.FirstEmail(message); email != "" {
			s.Profile.Overwrite(profile.FieldEmail, email)
		}
	case profile.FieldPhone:
		if phone := extract.FirstPhone(message); phone != "" {
			s.Profile.Overwrite(profile.FieldPhone, phone)
		}
	default:
		c.overwriteFromExtraction(ctx, s, message)
	}

	return c.confirmUpdate(ctx, s)
}

// confirmUpdate persists the corrected profile and re-presents the pending
// question without advancing the index.
func (c *Controller) confirmUpdate(ctx context.Context, s *Session) string {
	c.persistProfile(ctx, s)
	s.clearUpdateMode()

	response := c.lang.Get(i18n.KeyUpdateConfirmed)
	if question, ok := s.CurrentQuestion(); ok {
		response += "\n\n" + questions.Format(c.lang, s.QuestionIndex, len(s.Questions), question)
	}
	return response
}

// overwriteFromExtraction handles an update request that named no specific
// field: the message runs through the full extraction pipeline into a blank
// profile, and whatever comes out replaces the corresponding fields.
func (c *Controller) overwriteFromExtraction(ctx context.Context, s *Session, message string) {
	fresh := profile.New()
	c.heuristics.Apply(message, fresh)
	if err := c.extractor.Extract(ctx, message, fresh); err != nil {
		c.logger.Warn("llm extraction failed during update", zap.Error(err))
	}

	s.Profile.Overwrite(profile.FieldFullName, fresh.FullName)
	s.Profile.Overwrite(profile.FieldEmail, fresh.Email)
	s.Profile.Overwrite(profile.FieldPhone, fresh.Phone)
	s.Profile.Overwrite(profile.FieldLocation, fresh.CurrentLocation)
	if fresh.YearsExperience != nil {
		s.Profile.YearsExperience = fresh.YearsExperience
	}
	s.Profile.AddPositions(fresh.DesiredPositions...)
	s.Profile.AddTech(fresh.TechStack...)
}

func (c *Controller) updatePrompt(field profile.FieldName) string {
	switch field {
	case profile.FieldLocation:
		return c.lang.Get(i18n.KeyUpdateLocation)
	case profile.FieldEmail:
		return c.lang.Get(i18n.KeyUpdateEmail)
	case profile.FieldPhone:
		return c.lang.Get(i18n.KeyUpdatePhone)
	default:
		return c.lang.Get(i18n.KeyUpdateRequest)
	}
}

// phraseNextQuestion asks the model for a natural question covering every
// missing field. A failed call degrades to the generic apology.
func (c *Controller) phraseNextQuestion(ctx context.Context, missing []profile.FieldName) string {
	names := make([]string, 0, len(missing))
	for _, field := range missing {
		names = append(names, string(field))
	}

	prompt := fmt.Sprintf("%s\n\nMissing information: %s",
		c.lang.Get(i18n.KeyNextQuestionInstruction), strings.Join(names, ", "))

	response, err := c.generator.Generate(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: c.lang.Get(i18n.KeySystemPrompt)},
		{Role: ai.RoleUser, Content: prompt},
	}, ai.Options{Temperature: defaultTemperature, MaxTokens: c.maxTokens})
	if err != nil {
		c.logger.Warn("failed to phrase next question", zap.Error(err))
		return c.lang.Get(i18n.KeyErrorProcessing)
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return c.lang.FieldPrompt(missing[0])
	}
	return response
}

func (c *Controller) profileSummary(p *profile.Candidate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", c.lang.Get(i18n.KeyLabelSummary))
	fmt.Fprintf(&b, "%s:\n", c.lang.Get(i18n.KeyLabelPersonalInfo))
	fmt.Fprintf(&b, "- %s: %s\n", c.lang.Get(i18n.KeyLabelName), p.FullName)
	fmt.Fprintf(&b, "- %s: %s\n", c.lang.Get(i18n.KeyLabelEmail), p.Email)
	fmt.Fprintf(&b, "- %s: %s\n", c.lang.Get(i18n.KeyLabelPhone), p.Phone)
	fmt.Fprintf(&b, "- %s: %s\n\n", c.lang.Get(i18n.KeyLabelLocation), p.CurrentLocation)

	fmt.Fprintf(&b, "%s:\n", c.lang.Get(i18n.KeyLabelProfessional))
	years := 0
	if p.YearsExperience != nil {
		years = *p.YearsExperience
	}
	fmt.Fprintf(&b, "- %s: %d %s\n", c.lang.Get(i18n.KeyLabelExperience), years, c.lang.Get(i18n.KeyLabelYears))
	fmt.Fprintf(&b, "- %s: %s\n", c.lang.Get(i18n.KeyLabelPositions), strings.Join(p.DesiredPositions, ", "))
	fmt.Fprintf(&b, "- %s: %s", c.lang.Get(i18n.KeyLabelTechStack), strings.Join(p.TechStack, ", "))

	return b.String()
}

// persistProfile writes the current profile snapshot. Failures are logged
// and the in-memory state stays authoritative for the rest of the session.
func (c *Controller) persistProfile(ctx context.Context, s *Session) {
	id, err := c.gateway.CreateOrUpdateProfile(ctx, s.ID, s.Profile)
	if err != nil {
		c.logger.Warn("failed to persist profile", zap.String("session_id", s.ID), zap.Error(err))
		return
	}
	s.ProfileID = id
}

func (c *Controller) appendTranscript(ctx context.Context, s *Session, role, content string) {
	if s.ProfileID == 0 {
		return
	}
	if err := c.gateway.AppendTranscript(ctx, s.ProfileID, role, content); err != nil {
		c.logger.Warn("failed to persist transcript entry", zap.Error(err))
	}
}

func (c *Controller) reply(ctx context.Context, s *Session, response string) string {
	c.appendTranscript(ctx, s, store.RoleAssistant, response)
	return response
}

func isUpdateIntent(message string) bool {
	return containsAny(message, updateKeywords) && containsAny(message, infoKeywords)
}

// referencedField picks the field an update request names, best effort.
// Anything beyond location, email, and phone resolves through the full
// extraction pipeline instead.
func referencedField(message string) profile.FieldName {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "location"):
		return profile.FieldLocation
	case strings.Contains(lower, "email"):
		return profile.FieldEmail
	case strings.Contains(lower, "phone"):
		return profile.FieldPhone
	default:
		return ""
	}
}

func containsAny(message string, keywords []string) bool {
	lower := strings.ToLower(message)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
