package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/talentscout/intake/internal/profile"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 10
	connMaxLifetime = 5 * time.Minute
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS candidates (
		id BIGSERIAL PRIMARY KEY,
		session_id TEXT UNIQUE NOT NULL,
		full_name TEXT,
		email TEXT,
		phone TEXT,
		years_experience INTEGER,
		desired_positions TEXT,
		current_location TEXT,
		tech_stack TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS technical_questions (
		id BIGSERIAL PRIMARY KEY,
		candidate_id BIGINT NOT NULL REFERENCES candidates (id),
		question_index INTEGER NOT NULL,
		question TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS technical_answers (
		id BIGSERIAL PRIMARY KEY,
		candidate_id BIGINT NOT NULL REFERENCES candidates (id),
		question_id BIGINT NOT NULL REFERENCES technical_questions (id),
		answer TEXT NOT NULL,
		answered_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS conversation_logs (
		id BIGSERIAL PRIMARY KEY,
		candidate_id BIGINT NOT NULL REFERENCES candidates (id),
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_session ON candidates (session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_email ON candidates (email)`,
	`CREATE INDEX IF NOT EXISTS idx_technical_questions_candidate ON technical_questions (candidate_id)`,
	`CREATE INDEX IF NOT EXISTS idx_technical_answers_candidate ON technical_answers (candidate_id)`,
	`CREATE INDEX IF NOT EXISTS idx_conversation_logs_candidate ON conversation_logs (candidate_id)`,
}

// Postgres implements Gateway on a PostgreSQL database.
type Postgres struct {
	db *sql.DB
}

// NewPostgres connects to the database, bootstraps the schema, and returns
// the gateway.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) CreateOrUpdateProfile(ctx context.Context, sessionID string, c *profile.Candidate) (int64, error) {
	positions, err := marshalList(c.DesiredPositions)
	if err != nil {
		return 0, err
	}
	tech, err := marshalList(c.TechStack)
	if err != nil {
		return 0, err
	}

	query := `INSERT INTO candidates
			(session_id, full_name, email, phone, years_experience, desired_positions, current_location, tech_stack)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (session_id) DO UPDATE
			SET full_name = EXCLUDED.full_name,
				email = EXCLUDED.email,
				phone = EXCLUDED.phone,
				years_experience = EXCLUDED.years_experience,
				desired_positions = EXCLUDED.desired_positions,
				current_location = EXCLUDED.current_location,
				tech_stack = EXCLUDED.tech_stack,
				updated_at = now()
		RETURNING id`

	var id int64
	err = p.db.QueryRowContext(ctx, query,
		sessionID,
		nullString(c.FullName),
		nullString(c.Email),
		nullString(c.Phone),
		nullInt(c.YearsExperience),
		positions,
		nullString(c.CurrentLocation),
		tech,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert candidate: %w", err)
	}

	return id, nil
}

func (p *Postgres) SaveQuestionSet(ctx context.Context, profileID int64, questions []string) ([]int64, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin question set: %w", err)
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(questions))
	for index, question := range questions {
		var id int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO technical_questions (candidate_id, question_index, question)
			VALUES ($1, $2, $3) RETURNING id`,
			profileID, index, question,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert question %d: %w", index, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit question set: %w", err)
	}

	return ids, nil
}

func (p *Postgres) SaveAnswer(ctx context.Context, profileID int64, questionIndex int, answer string) error {
	var questionID int64
	err := p.db.QueryRowContext(ctx,
		`SELECT id FROM technical_questions WHERE candidate_id = $1 AND question_index = $2`,
		profileID, questionIndex,
	).Scan(&questionID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("no question at index %d for profile %d", questionIndex, profileID)
	}
	if err != nil {
		return fmt.Errorf("find question: %w", err)
	}

	_, err = p.db.ExecContext(ctx,
		`INSERT INTO technical_answers (candidate_id, question_id, answer) VALUES ($1, $2, $3)`,
		profileID, questionID, answer,
	)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}

	return nil
}

func (p *Postgres) AppendTranscript(ctx context.Context, profileID int64, role, content string) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO conversation_logs (candidate_id, role, content) VALUES ($1, $2, $3)`,
		profileID, role, content,
	)
	if err != nil {
		return fmt.Errorf("insert transcript entry: %w", err)
	}
	return nil
}

func (p *Postgres) FetchProfileSummary(ctx context.Context, profileID int64) (*Summary, error) {
	summary, err := p.scanCandidate(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if summary.Questions, err = p.scanQuestions(ctx, profileID); err != nil {
		return nil, err
	}
	if summary.Transcript, err = p.scanTranscript(ctx, profileID); err != nil {
		return nil, err
	}

	return summary, nil
}

func (p *Postgres) ListProfiles(ctx context.Context, limit int) ([]*Summary, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, session_id, full_name, email, phone, years_experience,
			desired_positions, current_location, tech_stack, created_at, updated_at
		FROM candidates ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var summaries []*Summary
	for rows.Next() {
		summary, err := scanCandidateRow(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

func (p *Postgres) scanCandidate(ctx context.Context, profileID int64) (*Summary, error) {
	row := p.db.QueryRowContext(ctx,
		`SELECT id, session_id, full_name, email, phone, years_experience,
			desired_positions, current_location, tech_stack, created_at, updated_at
		FROM candidates WHERE id = $1`,
		profileID,
	)

	summary, err := scanCandidateRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %d not found", profileID)
	}
	return summary, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidateRow(row rowScanner) (*Summary, error) {
	var (
		summary   Summary
		fullName  sql.NullString
		email     sql.NullString
		phone     sql.NullString
		years     sql.NullInt64
		positions sql.NullString
		location  sql.NullString
		tech      sql.NullString
	)

	err := row.Scan(
		&summary.ID, &summary.SessionID,
		&fullName, &email, &phone, &years, &positions, &location, &tech,
		&summary.CreatedAt, &summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	summary.Profile.FullName = fullName.String
	summary.Profile.Email = email.String
	summary.Profile.Phone = phone.String
	summary.Profile.CurrentLocation = location.String
	if years.Valid {
		value := int(years.Int64)
		summary.Profile.YearsExperience = &value
	}
	if summary.Profile.DesiredPositions, err = unmarshalList(positions); err != nil {
		return nil, fmt.Errorf("decode desired_positions: %w", err)
	}
	if summary.Profile.TechStack, err = unmarshalList(tech); err != nil {
		return nil, fmt.Errorf("decode tech_stack: %w", err)
	}

	return &summary, nil
}

func (p *Postgres) scanQuestions(ctx context.Context, profileID int64) ([]QA, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT tq.question_index, tq.question, ta.answer, ta.answered_at
		FROM technical_questions tq
		LEFT JOIN technical_answers ta ON tq.id = ta.question_id
		WHERE tq.candidate_id = $1
		ORDER BY tq.question_index`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []QA
	for rows.Next() {
		var (
			qa         QA
			answer     sql.NullString
			answeredAt sql.NullTime
		)
		if err := rows.Scan(&qa.QuestionIndex, &qa.Question, &answer, &answeredAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if answer.Valid {
			qa.Answer = answer.String
			qa.Answered = true
		}
		if answeredAt.Valid {
			ts := answeredAt.Time
			qa.AnsweredAt = &ts
		}
		questions = append(questions, qa)
	}

	return questions, rows.Err()
}

func (p *Postgres) scanTranscript(ctx context.Context, profileID int64) ([]TranscriptEntry, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT role, content, created_at FROM conversation_logs
		WHERE candidate_id = $1 ORDER BY created_at, id`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()

	var transcript []TranscriptEntry
	for rows.Next() {
		var entry TranscriptEntry
		if err := rows.Scan(&entry.Role, &entry.Content, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scan transcript entry: %w", err)
		}
		transcript = append(transcript, entry)
	}

	return transcript, rows.Err()
}

// List-typed profile fields are stored as JSON text, NULL when empty.
func marshalList(items []string) (sql.NullString, error) {
	if len(items) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode list column: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func unmarshalList(column sql.NullString) ([]string, error) {
	if !column.Valid || column.String == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(column.String), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
