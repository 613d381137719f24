package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/talentscout/intake/internal/profile"
)

// Memory implements Gateway without a database. The run command falls back
// to it when no DSN is configured, so an intake session still works end to
// end; the collected data just does not survive the process.
type Memory struct {
	mu sync.Mutex

	nextID     int64
	bySession  map[string]int64
	profiles   map[int64]*Summary
	questions  map[int64][]QA
	transcript map[int64][]TranscriptEntry
}

// NewMemory returns an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{
		nextID:     1,
		bySession:  make(map[string]int64),
		profiles:   make(map[int64]*Summary),
		questions:  make(map[int64][]QA),
		transcript: make(map[int64][]TranscriptEntry),
	}
}

func (m *Memory) Close() error { return nil }

func (m *Memory) CreateOrUpdateProfile(ctx context.Context, sessionID string, c *profile.Candidate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	id, ok := m.bySession[sessionID]
	if !ok {
		id = m.nextID
		m.nextID++
		m.bySession[sessionID] = id
		m.profiles[id] = &Summary{
			ID:        id,
			SessionID: sessionID,
			CreatedAt: now,
		}
	}

	summary := m.profiles[id]
	summary.Profile = *c
	summary.UpdatedAt = now

	return id, nil
}

func (m *Memory) SaveQuestionSet(ctx context.Context, profileID int64, questions []string) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[profileID]; !ok {
		return nil, fmt.Errorf("profile %d not found", profileID)
	}

	ids := make([]int64, 0, len(questions))
	set := make([]QA, 0, len(questions))
	for index, question := range questions {
		ids = append(ids, m.nextID)
		m.nextID++
		set = append(set, QA{QuestionIndex: index, Question: question})
	}
	m.questions[profileID] = set

	return ids, nil
}

func (m *Memory) SaveAnswer(ctx context.Context, profileID int64, questionIndex int, answer string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	set := m.questions[profileID]
	if questionIndex < 0 || questionIndex >= len(set) {
		return fmt.Errorf("no question at index %d for profile %d", questionIndex, profileID)
	}

	now := time.Now()
	set[questionIndex].Answer = answer
	set[questionIndex].Answered = true
	set[questionIndex].AnsweredAt = &now

	return nil
}

func (m *Memory) AppendTranscript(ctx context.Context, profileID int64, role, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[profileID]; !ok {
		return fmt.Errorf("profile %d not found", profileID)
	}

	m.transcript[profileID] = append(m.transcript[profileID], TranscriptEntry{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})

	return nil
}

func (m *Memory) FetchProfileSummary(ctx context.Context, profileID int64) (*Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("profile %d not found", profileID)
	}

	summary := *stored
	summary.Questions = append([]QA(nil), m.questions[profileID]...)
	summary.Transcript = append([]TranscriptEntry(nil), m.transcript[profileID]...)

	return &summary, nil
}

func (m *Memory) ListProfiles(ctx context.Context, limit int) ([]*Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	summaries := make([]*Summary, 0, len(m.profiles))
	for _, stored := range m.profiles {
		summary := *stored
		summaries = append(summaries, &summary)
	}

	// Newest first, matching the database gateway.
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].ID > summaries[j].ID
		}
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	return summaries, nil
}
