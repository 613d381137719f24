// Package questions produces the technical question set for a completed
// candidate profile, asking the model once and falling back to a fixed
// localized set when the response cannot be used.
package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	_ "embed"

	"go.uber.org/zap"

	"github.com/talentscout/intake/internal/ai"
	"github.com/talentscout/intake/internal/extract"
	"github.com/talentscout/intake/internal/i18n"
	"github.com/talentscout/intake/internal/profile"
	"github.com/talentscout/intake/internal/utils"
)

//go:embed questions_prompt.md
var questionsPromptTemplate string

const (
	questionsTemperature = 0.5

	// DefaultCount is how many questions a session asks.
	DefaultCount = 3

	defaultMaxLogLength = 200
)

// Generator builds the technical question set.
type Generator struct {
	generator    ai.Generator
	lang         *i18n.Manager
	logger       *zap.Logger
	maxTokens    int32
	maxLogLength int
	count        int
}

// NewGenerator creates the question generator. A non-positive count falls
// back to DefaultCount, a non-positive maxLogLength to the default preview
// limit.
func NewGenerator(generator ai.Generator, lang *i18n.Manager, count int, maxTokens int32, maxLogLength int, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if count <= 0 {
		count = DefaultCount
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Generator{
		generator:    generator,
		lang:         lang,
		logger:       logger,
		maxTokens:    maxTokens,
		maxLogLength: maxLogLength,
		count:        count,
	}
}

// Generate asks the model for the question set. A failed call or an
// unusable response yields the localized fallback set instead of an error,
// so the conversation always has questions to ask.
func (g *Generator) Generate(ctx context.Context, c *profile.Candidate) []string {
	prompt := g.buildPrompt(c)

	raw, err := g.generator.Generate(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: g.lang.Get(i18n.KeySystemPrompt)},
		{Role: ai.RoleUser, Content: prompt},
	}, ai.Options{Temperature: questionsTemperature, MaxTokens: g.maxTokens})
	if err != nil {
		g.logger.Warn("question generation failed, using fallback set", zap.Error(err))
		return g.fallback(c)
	}

	g.logger.Debug("question generation response",
		zap.String("response_preview", utils.TruncateForLog(raw, g.maxLogLength)),
	)

	parsed := parseQuestions(raw)
	if len(parsed) == 0 {
		g.logger.Warn("question generation response unusable, using fallback set")
		return g.fallback(c)
	}

	if len(parsed) > g.count {
		parsed = parsed[:g.count]
	}
	return parsed
}

func (g *Generator) buildPrompt(c *profile.Candidate) string {
	years := "unknown"
	if c.YearsExperience != nil {
		years = strconv.Itoa(*c.YearsExperience)
	}

	r := strings.NewReplacer(
		"{{INSTRUCTION}}", g.lang.Get(i18n.KeyQuestionsInstruction),
		"{{TECH_STACK}}", strings.Join(c.TechStack, ", "),
		"{{POSITIONS}}", strings.Join(c.DesiredPositions, ", "),
		"{{YEARS}}", years,
		"{{COUNT}}", strconv.Itoa(g.count),
	)
	return r.Replace(questionsPromptTemplate)
}

func (g *Generator) fallback(c *profile.Candidate) []string {
	primary := "your primary technology"
	if len(c.TechStack) > 0 {
		primary = c.TechStack[0]
	}
	return g.lang.FallbackQuestions(primary)
}

// parseQuestions accepts either a bare JSON array of strings or an object
// with a "questions" array, with or without markdown fences.
func parseQuestions(raw string) []string {
	if payload := extractJSONArray(raw); payload != "" {
		var questions []string
		if err := json.Unmarshal([]byte(payload), &questions); err == nil {
			return prune(questions)
		}
	}

	if payload := extract.ExtractJSONObject(raw); payload != "" {
		var wrapped struct {
			Questions []string `json:"questions"`
		}
		if err := json.Unmarshal([]byte(payload), &wrapped); err == nil {
			return prune(wrapped.Questions)
		}
	}

	return nil
}

func extractJSONArray(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return ""
	}

	// An object whose first bracket belongs to a nested array is not a bare
	// array response.
	if brace := strings.Index(raw, "{"); brace != -1 && brace < start {
		return ""
	}
	return raw[start : end+1]
}

func prune(questions []string) []string {
	kept := questions[:0]
	for _, q := range questions {
		q = strings.TrimSpace(q)
		if q != "" {
			kept = append(kept, q)
		}
	}
	return kept
}

// Format renders one question with its numbered header.
func Format(lang *i18n.Manager, index, total int, question string) string {
	return fmt.Sprintf("%s %s", lang.QuestionNumber(index+1, total), question)
}
