package extract

import (
	"regexp"
	"strings"
)

// roleKeywords is the single shared set of job-role words consumed by every
// extraction branch: the name and location guards and the position fallback.
var roleKeywords = []string{
	"tester", "developer", "engineer", "analyst", "manager", "designer",
	"architect", "consultant", "specialist", "lead", "programmer",
	"administrator", "devops", "qa", "scientist", "intern", "associate",
}

var roleKeywordPatterns = compileRoleKeywordPatterns()

func compileRoleKeywordPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(roleKeywords))
	for _, kw := range roleKeywords {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	return patterns
}

// isRoleKeyword reports whether the trimmed text equals one of the job-role
// keywords, ignoring case.
func isRoleKeyword(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, kw := range roleKeywords {
		if text == kw {
			return true
		}
	}
	return false
}

// containsRoleKeyword reports whether the message contains any job-role
// keyword as a whole word.
func containsRoleKeyword(message string) bool {
	lower := strings.ToLower(message)
	for _, pattern := range roleKeywordPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
