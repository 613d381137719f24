// Package i18n supplies every user-facing template string and the
// language-model framing text, keyed by language code. The conversation core
// only performs lookups and placeholder substitution here and embeds no
// language-specific text itself.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"github.com/talentscout/intake/internal/profile"
)

// Key identifies one translatable string.
type Key string

const (
	KeyGreeting      Key = "greeting"
	KeyNextName      Key = "next_name"
	KeyNextEmail     Key = "next_email"
	KeyNextPhone     Key = "next_phone"
	KeyNextExp       Key = "next_experience"
	KeyNextPosition  Key = "next_position"
	KeyNextLocation  Key = "next_location"
	KeyNextTechStack Key = "next_tech_stack"

	KeyTechIntro      Key = "tech_questions_intro"
	KeyQuestionFormat Key = "question_format"
	KeyThankYouAnswer Key = "thank_you_answer"
	KeyFarewell       Key = "farewell"

	KeyUpdateRequest   Key = "update_request"
	KeyUpdateLocation  Key = "update_location"
	KeyUpdateEmail     Key = "update_email"
	KeyUpdatePhone     Key = "update_phone"
	KeyUpdateConfirmed Key = "update_confirmed"

	KeyErrorProcessing Key = "error_processing"

	KeySystemPrompt            Key = "system_prompt"
	KeyExtractionInstruction   Key = "extraction_instruction"
	KeyNextQuestionInstruction Key = "next_question_instruction"
	KeyQuestionsInstruction    Key = "questions_instruction"

	KeyFallbackQuestion1 Key = "fallback_question_1"
	KeyFallbackQuestion2 Key = "fallback_question_2"
	KeyFallbackQuestion3 Key = "fallback_question_3"

	KeyLabelSummary      Key = "label_summary"
	KeyLabelPersonalInfo Key = "label_personal_info"
	KeyLabelProfessional Key = "label_professional_details"
	KeyLabelName         Key = "label_name"
	KeyLabelEmail        Key = "label_email"
	KeyLabelPhone        Key = "label_phone"
	KeyLabelLocation     Key = "label_location"
	KeyLabelExperience   Key = "label_experience"
	KeyLabelYears        Key = "label_years"
	KeyLabelPositions    Key = "label_positions"
	KeyLabelTechStack    Key = "label_tech_stack"

	keyLanguageName Key = "language_name"
)

type bundle map[Key]string

var bundles = map[string]bundle{
	"en": english,
	"de": german,
	"fr": french,
}

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// Supported returns the sorted list of supported language codes.
func Supported() []string {
	codes := make([]string, 0, len(bundles))
	for code := range bundles {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LanguageName returns the display name for a language code.
func LanguageName(code string) string {
	if b, ok := bundles[code]; ok {
		return b[keyLanguageName]
	}
	return strings.ToUpper(code)
}

// Manager resolves template strings for one selected language.
type Manager struct {
	lang string
}

// New creates a manager for the given language code.
func New(lang string) (*Manager, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = DefaultLanguage
	}
	if _, ok := bundles[lang]; !ok {
		return nil, fmt.Errorf("unsupported language %q (supported: %s)", lang, strings.Join(Supported(), ", "))
	}
	return &Manager{lang: lang}, nil
}

// Language returns the active language code.
func (m *Manager) Language() string { return m.lang }

// Get looks up a template string, falling back to English when the active
// bundle misses the key.
func (m *Manager) Get(key Key) string {
	if s, ok := bundles[m.lang][key]; ok {
		return s
	}
	return english[key]
}

// FieldPrompt returns the canned question asking for one missing field.
func (m *Manager) FieldPrompt(field profile.FieldName) string {
	switch field {
	case profile.FieldEmail:
		return m.Get(KeyNextEmail)
	case profile.FieldPhone:
		return m.Get(KeyNextPhone)
	case profile.FieldYearsExperience:
		return m.Get(KeyNextExp)
	case profile.FieldPositions:
		return m.Get(KeyNextPosition)
	case profile.FieldLocation:
		return m.Get(KeyNextLocation)
	case profile.FieldTechStack:
		return m.Get(KeyNextTechStack)
	default:
		return m.Get(KeyNextName)
	}
}

// TechIntro formats the introduction shown when technical questions begin.
func (m *Manager) TechIntro(name string, techStack []string) string {
	intro := strings.ReplaceAll(m.Get(KeyTechIntro), "{name}", name)
	return strings.ReplaceAll(intro, "{tech_stack}", strings.Join(techStack, ", "))
}

// QuestionNumber formats the "Question X of Y" header.
func (m *Manager) QuestionNumber(current, total int) string {
	s := strings.ReplaceAll(m.Get(KeyQuestionFormat), "{current}", fmt.Sprint(current))
	return strings.ReplaceAll(s, "{total}", fmt.Sprint(total))
}

// FallbackQuestions returns the fixed question set used when the model
// response cannot be parsed.
func (m *Manager) FallbackQuestions(primaryTech string) []string {
	return []string{
		strings.ReplaceAll(m.Get(KeyFallbackQuestion1), "{tech}", primaryTech),
		m.Get(KeyFallbackQuestion2),
		m.Get(KeyFallbackQuestion3),
	}
}
