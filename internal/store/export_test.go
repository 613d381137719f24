package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentscout/intake/internal/profile"
)

func seedGateway(t *testing.T) *Memory {
	t.Helper()
	ctx := context.Background()
	gw := NewMemory()

	years := 5
	candidate := &profile.Candidate{
		FullName:         "Sarah Johnson",
		Email:            "sarah.j@email.com",
		Phone:            "+1-555-0123",
		YearsExperience:  &years,
		DesiredPositions: []string{"full stack developer"},
		CurrentLocation:  "Austin",
		TechStack:        []string{"Python", "React", "PostgreSQL"},
	}

	id, err := gw.CreateOrUpdateProfile(ctx, "session-1", candidate)
	require.NoError(t, err)

	_, err = gw.SaveQuestionSet(ctx, id, []string{"Q1", "Q2", "Q3"})
	require.NoError(t, err)
	require.NoError(t, gw.SaveAnswer(ctx, id, 0, "an answer"))
	require.NoError(t, gw.AppendTranscript(ctx, id, RoleUser, "hello"))

	return gw
}

func TestExportJSON(t *testing.T) {
	gw := seedGateway(t)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(context.Background(), gw, &buf))

	var decoded []Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	got := decoded[0]
	require.Equal(t, "session-1", got.SessionID)
	require.Equal(t, "Sarah Johnson", got.Profile.FullName)
	require.Len(t, got.Questions, 3)
	require.True(t, got.Questions[0].Answered)
	require.False(t, got.Questions[1].Answered)
	require.Len(t, got.Transcript, 1)
}

func TestExportCSV(t *testing.T) {
	gw := seedGateway(t)

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(context.Background(), gw, &buf))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header := records[0]
	require.Equal(t, "full_name", header[2])

	row := records[1]
	require.Equal(t, "Sarah Johnson", row[2])
	require.Equal(t, "5", row[5])
	require.Equal(t, "Python; React; PostgreSQL", row[8])
	require.Equal(t, "1", row[9])
	require.Equal(t, "3", row[10])
}

func TestMemoryProfileUpsert(t *testing.T) {
	ctx := context.Background()
	gw := NewMemory()

	first, err := gw.CreateOrUpdateProfile(ctx, "session-x", &profile.Candidate{FullName: "Ada"})
	require.NoError(t, err)

	second, err := gw.CreateOrUpdateProfile(ctx, "session-x", &profile.Candidate{FullName: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	require.Equal(t, first, second)

	summary, err := gw.FetchProfileSummary(ctx, first)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", summary.Profile.Email)
}

func TestMemorySaveAnswerBounds(t *testing.T) {
	ctx := context.Background()
	gw := NewMemory()

	id, err := gw.CreateOrUpdateProfile(ctx, "session-y", &profile.Candidate{})
	require.NoError(t, err)
	_, err = gw.SaveQuestionSet(ctx, id, []string{"only one"})
	require.NoError(t, err)

	require.Error(t, gw.SaveAnswer(ctx, id, 1, "out of range"))
	require.NoError(t, gw.SaveAnswer(ctx, id, 0, "fine"))
}
