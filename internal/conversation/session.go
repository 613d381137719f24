// Package conversation drives one intake chat from greeting to farewell:
// field extraction, phase transitions, the technical question sequence, and
// the mid-question update flow.
package conversation

import (
	"github.com/talentscout/intake/internal/profile"
)

// Phase is the coarse conversational stage. It only moves forward.
type Phase string

const (
	PhaseGreeting           Phase = "greeting"
	PhaseInfoGathering      Phase = "info_gathering"
	PhaseTechnicalQuestions Phase = "technical_questions"
	PhaseCompleted          Phase = "completed"
)

// answerMode is the sub-state within the technical question phase. Modeling
// the update flow as a state rather than a flag makes re-presenting the
// pending question on update completion a guaranteed transition.
type answerMode int

const (
	awaitingAnswer answerMode = iota
	awaitingUpdateValue
)

// Session aggregates all per-conversation state. It is owned by a single
// goroutine; turns are processed one at a time.
type Session struct {
	ID      string
	Profile *profile.Candidate
	Phase   Phase

	// Questions is generated exactly once, when the profile first completes,
	// and never reordered afterwards.
	Questions     []string
	QuestionIndex int

	mode        answerMode
	updateField profile.FieldName

	// ProfileID is the persistence identifier, zero until the first write.
	ProfileID int64
}

// NewSession starts a fresh session in the greeting phase.
func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		Profile: profile.New(),
		Phase:   PhaseGreeting,
	}
}

// Done reports whether the conversation has reached its terminal phase.
func (s *Session) Done() bool {
	return s.Phase == PhaseCompleted
}

// CurrentQuestion returns the question pending an answer.
func (s *Session) CurrentQuestion() (string, bool) {
	if s.QuestionIndex < 0 || s.QuestionIndex >= len(s.Questions) {
		return "", false
	}
	return s.Questions[s.QuestionIndex], true
}

func (s *Session) enterUpdateMode(field profile.FieldName) {
	s.mode = awaitingUpdateValue
	s.updateField = field
}

func (s *Session) clearUpdateMode() {
	s.mode = awaitingAnswer
	s.updateField = ""
}
