// Package store persists candidate profiles, technical question sets,
// answers, and full conversation transcripts.
package store

import (
	"context"
	"time"

	"github.com/talentscout/intake/internal/profile"
)

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// QA pairs one generated question with its answer, when given.
type QA struct {
	QuestionIndex int        `json:"question_index"`
	Question      string     `json:"question"`
	Answer        string     `json:"answer,omitempty"`
	Answered      bool       `json:"answered"`
	AnsweredAt    *time.Time `json:"answered_at,omitempty"`
}

// TranscriptEntry is one recorded chat message.
type TranscriptEntry struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Summary is the stored view of one intake session. Questions and Transcript
// are populated by FetchProfileSummary and left empty by ListProfiles.
type Summary struct {
	ID         int64             `json:"id"`
	SessionID  string            `json:"session_id"`
	Profile    profile.Candidate `json:"profile"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Questions  []QA              `json:"technical_qa,omitempty"`
	Transcript []TranscriptEntry `json:"transcript,omitempty"`
}

// Gateway is the persistence contract consumed by the conversation core.
// Implementations serialize the list-typed profile fields as JSON text.
type Gateway interface {
	// CreateOrUpdateProfile upserts the profile snapshot for a session and
	// returns the stable profile id.
	CreateOrUpdateProfile(ctx context.Context, sessionID string, c *profile.Candidate) (int64, error)

	// SaveQuestionSet stores the ordered technical questions generated for a
	// profile and returns their storage ids.
	SaveQuestionSet(ctx context.Context, profileID int64, questions []string) ([]int64, error)

	// SaveAnswer records the answer given to the question at questionIndex.
	SaveAnswer(ctx context.Context, profileID int64, questionIndex int, answer string) error

	// AppendTranscript records one chat message.
	AppendTranscript(ctx context.Context, profileID int64, role, content string) error

	// FetchProfileSummary returns the full stored view of one profile.
	FetchProfileSummary(ctx context.Context, profileID int64) (*Summary, error)

	// ListProfiles returns up to limit stored profiles, newest first.
	ListProfiles(ctx context.Context, limit int) ([]*Summary, error)

	Close() error
}
