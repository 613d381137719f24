// Package extract resolves candidate profile fields from free-text chat
// messages, first through cheap regex heuristics and then through a
// language-model pass for whatever remains ambiguous.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/talentscout/intake/internal/profile"
)

const (
	// minPhoneLength guards against short numeric tokens matching the loose
	// phone pattern.
	minPhoneLength = 10

	// maxShortAnswerTokens bounds how many words a message may have to be
	// treated as a bare name or location answer.
	maxShortAnswerTokens = 3

	// maxPositionLength bounds the message length accepted verbatim as a
	// desired position by the keyword fallback.
	maxPositionLength = 50
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`\+?\(?[0-9]{1,4}\)?[-\s.]?\(?[0-9]{1,4}\)?[-\s.]?[0-9]{1,5}[-\s.]?[0-9]{1,5}`)
	yearsPattern    = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)`)
	namePattern     = regexp.MustCompile(`^[A-Za-z\s'-]+$`)
	locationPattern = regexp.MustCompile(`^[A-Za-z\s,.-]+$`)
)

// FirstEmail returns the first email address found in the text, or "".
func FirstEmail(text string) string {
	return emailPattern.FindString(text)
}

// FirstPhone returns the first phone number found in the text, or "" when
// no sufficiently long match exists.
func FirstPhone(text string) string {
	match := phonePattern.FindString(text)
	if len(match) < minPhoneLength {
		return ""
	}
	return match
}

// Heuristics recognizes unambiguous fields without a network call.
type Heuristics struct {
	logger *zap.Logger
}

// NewHeuristics creates the regex-based first-pass extractor.
func NewHeuristics(logger *zap.Logger) *Heuristics {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Heuristics{logger: logger}
}

// Apply runs every heuristic branch against the message, mutating only
// fields the candidate has not provided yet.
func (h *Heuristics) Apply(message string, c *profile.Candidate) {
	h.extractEmail(message, c)
	h.extractPhone(message, c)
	h.extractYears(message, c)
	h.extractName(message, c)
	h.extractLocation(message, c)
	h.extractPositionFallback(message, c)
}

func (h *Heuristics) extractEmail(message string, c *profile.Candidate) {
	if c.Email != "" {
		return
	}
	if match := emailPattern.FindString(message); match != "" {
		c.SetEmail(match)
		h.logger.Debug("extracted email via regex", zap.String("email", match))
	}
}

func (h *Heuristics) extractPhone(message string, c *profile.Candidate) {
	if c.Phone != "" {
		return
	}
	match := phonePattern.FindString(message)
	if len(match) >= minPhoneLength {
		c.SetPhone(match)
		h.logger.Debug("extracted phone via regex", zap.String("phone", match))
	}
}

func (h *Heuristics) extractYears(message string, c *profile.Candidate) {
	if c.YearsExperience != nil {
		return
	}
	groups := yearsPattern.FindStringSubmatch(message)
	if groups == nil {
		return
	}
	// Parse failures leave the field unset.
	years, err := strconv.Atoi(groups[1])
	if err != nil {
		return
	}
	if c.SetYearsExperience(years) {
		h.logger.Debug("extracted years of experience via regex", zap.Int("years", years))
	}
}

func (h *Heuristics) extractName(message string, c *profile.Candidate) {
	if c.FullName != "" || len(strings.Fields(message)) > maxShortAnswerTokens {
		return
	}

	candidate := strings.TrimSpace(message)
	if candidate == "" || !namePattern.MatchString(candidate) {
		return
	}
	// A short answer mentioning a job role ("software tester") is a position
	// answer, not a name.
	if containsRoleKeyword(candidate) {
		return
	}

	c.SetFullName(candidate)
	h.logger.Debug("extracted name via pattern", zap.String("name", candidate))
}

// extractLocation accepts a short token as the location only when it is
// plausibly the next thing being asked for: at most one field besides the
// location may still be missing.
func (h *Heuristics) extractLocation(message string, c *profile.Candidate) {
	if c.CurrentLocation != "" || len(strings.Fields(message)) > maxShortAnswerTokens {
		return
	}

	candidate := strings.TrimSpace(message)
	if candidate == "" || !locationPattern.MatchString(candidate) {
		return
	}
	if isRoleKeyword(candidate) || candidate == c.FullName {
		return
	}

	missing := 0
	for _, field := range c.MissingFields() {
		if field != profile.FieldLocation {
			missing++
		}
	}
	if missing > 1 {
		return
	}

	c.SetLocation(candidate)
	h.logger.Debug("extracted location via pattern", zap.String("location", candidate))
}

// extractPositionFallback treats the whole message as a desired position when
// it mentions a job-role keyword. It stays silent once a name is known, so a
// bare name answer is never misread as a position.
func (h *Heuristics) extractPositionFallback(message string, c *profile.Candidate) {
	if len(c.DesiredPositions) > 0 || c.FullName != "" {
		return
	}
	if !containsRoleKeyword(message) {
		return
	}

	position := strings.TrimSpace(message)
	if position == "" || len(position) >= maxPositionLength {
		return
	}

	c.AddPositions(position)
	h.logger.Debug("extracted position via keyword fallback", zap.String("position", position))
}
