package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/talentscout/intake/internal/ai"
	"github.com/talentscout/intake/internal/i18n"
	"github.com/talentscout/intake/internal/profile"
	"github.com/talentscout/intake/internal/utils"
)

//go:embed extraction_prompt.md
var extractionPromptTemplate string

const (
	extractionTemperature = 0.3

	defaultMaxLogLength = 200
)

// LLMExtractor resolves compound or ambiguous information the heuristics
// cannot, by asking a language model for a structured JSON object and merging
// it back into the profile under the same first-write-wins rules.
type LLMExtractor struct {
	generator    ai.Generator
	lang         *i18n.Manager
	logger       *zap.Logger
	maxTokens    int32
	maxLogLength int
}

// NewLLMExtractor creates the model-backed extractor. A non-positive
// maxLogLength falls back to the default preview limit.
func NewLLMExtractor(generator ai.Generator, lang *i18n.Manager, maxTokens int32, maxLogLength int, logger *zap.Logger) *LLMExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &LLMExtractor{
		generator:    generator,
		lang:         lang,
		logger:       logger,
		maxTokens:    maxTokens,
		maxLogLength: maxLogLength,
	}
}

// Extract sends the message to the model and merges any recognized fields
// into the candidate. An unparseable response merges nothing and is not an
// error; a failed model call is returned to the caller.
func (e *LLMExtractor) Extract(ctx context.Context, message string, c *profile.Candidate) error {
	prompt := buildExtractionPrompt(e.lang, message)

	raw, err := e.generator.Generate(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: e.lang.Get(i18n.KeySystemPrompt)},
		{Role: ai.RoleUser, Content: prompt},
	}, ai.Options{Temperature: extractionTemperature, MaxTokens: e.maxTokens})
	if err != nil {
		return fmt.Errorf("llm extraction: %w", err)
	}

	e.logger.Debug("llm extraction response",
		zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLength)),
	)

	fields, ok := parseExtraction(raw)
	if !ok {
		e.logger.Debug("llm extraction response is not parseable; merging nothing")
		return nil
	}

	merge(fields, c)
	return nil
}

func buildExtractionPrompt(lang *i18n.Manager, message string) string {
	prompt := strings.ReplaceAll(extractionPromptTemplate, "{{INSTRUCTION}}", lang.Get(i18n.KeyExtractionInstruction))
	return strings.ReplaceAll(prompt, "{{MESSAGE}}", message)
}

// extractedFields is the JSON shape requested from the model. List fields
// tolerate a bare string thanks to the weakly typed decode.
type extractedFields struct {
	FullName         string   `mapstructure:"full_name"`
	Email            string   `mapstructure:"email"`
	Phone            string   `mapstructure:"phone"`
	DesiredPositions []string `mapstructure:"desired_positions"`
	CurrentLocation  string   `mapstructure:"current_location"`
	TechStack        []string `mapstructure:"tech_stack"`

	yearsExperience *int
}

// parseExtraction recovers the first top-level JSON object from the free-form
// model output. Any failure yields an empty result instead of an error.
func parseExtraction(raw string) (*extractedFields, bool) {
	payload := ExtractJSONObject(raw)
	if payload == "" {
		return nil, false
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, false
	}

	for key, value := range data {
		if value == nil {
			delete(data, key)
		}
	}

	// Years are coerced separately so a malformed value drops only that
	// field instead of the whole extraction.
	years := coerceYears(data["years_experience"])
	delete(data, "years_experience")

	fields := &extractedFields{}
	cfg := &mapstructure.DecoderConfig{
		Result:           fields,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, false
	}
	if err := decoder.Decode(data); err != nil {
		return nil, false
	}

	fields.yearsExperience = years
	return fields, true
}

// ExtractJSONObject returns the greedy first-to-last brace slice of the text,
// stripping any markdown fences first. It returns "" when no object is found.
func ExtractJSONObject(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return ""
	}
	return raw[start : end+1]
}

func coerceYears(v any) *int {
	switch val := v.(type) {
	case float64:
		years := int(val)
		return &years
	case string:
		years, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil
		}
		return &years
	default:
		return nil
	}
}

func merge(fields *extractedFields, c *profile.Candidate) {
	c.SetFullName(fields.FullName)
	c.SetEmail(fields.Email)
	c.SetPhone(fields.Phone)
	c.SetLocation(fields.CurrentLocation)
	if fields.yearsExperience != nil {
		c.SetYearsExperience(*fields.yearsExperience)
	}
	c.AddPositions(fields.DesiredPositions...)
	c.AddTech(fields.TechStack...)
}
