package store

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// exportBatchLimit caps how many profiles a single export reads.
const exportBatchLimit = 10000

// ExportJSON writes every stored profile, including questions and
// transcript, as an indented JSON array.
func ExportJSON(ctx context.Context, gw Gateway, w io.Writer) error {
	summaries, err := gw.ListProfiles(ctx, exportBatchLimit)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}

	full := make([]*Summary, 0, len(summaries))
	for _, summary := range summaries {
		detail, err := gw.FetchProfileSummary(ctx, summary.ID)
		if err != nil {
			return fmt.Errorf("fetch profile %d: %w", summary.ID, err)
		}
		full = append(full, detail)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(full)
}

// ExportCSV writes one flat row per profile. List fields are joined with
// "; " and questions collapse into answered/total counts.
func ExportCSV(ctx context.Context, gw Gateway, w io.Writer) error {
	summaries, err := gw.ListProfiles(ctx, exportBatchLimit)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}

	cw := csv.NewWriter(w)
	header := []string{
		"id", "session_id", "full_name", "email", "phone",
		"years_experience", "desired_positions", "current_location",
		"tech_stack", "questions_answered", "questions_total", "created_at",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, summary := range summaries {
		detail, err := gw.FetchProfileSummary(ctx, summary.ID)
		if err != nil {
			return fmt.Errorf("fetch profile %d: %w", summary.ID, err)
		}

		answered := 0
		for _, qa := range detail.Questions {
			if qa.Answered {
				answered++
			}
		}

		years := ""
		if detail.Profile.YearsExperience != nil {
			years = strconv.Itoa(*detail.Profile.YearsExperience)
		}

		row := []string{
			strconv.FormatInt(detail.ID, 10),
			detail.SessionID,
			detail.Profile.FullName,
			detail.Profile.Email,
			detail.Profile.Phone,
			years,
			strings.Join(detail.Profile.DesiredPositions, "; "),
			detail.Profile.CurrentLocation,
			strings.Join(detail.Profile.TechStack, "; "),
			strconv.Itoa(answered),
			strconv.Itoa(len(detail.Questions)),
			detail.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
