package usecase

import (
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	controlChars   = regexp.MustCompile("[\x00-\x08\x0B-\x0C\x0E-\x1F\x7F]")
)

// Normalize makes raw user text safe and canonical before it reaches the
// model: trim, collapse whitespace runs to a single space, strip dangerous
// control characters. Ordinary punctuation and emoji are meaningful user
// content and pass through untouched. Total function, never fails.
func Normalize(text string) string {
	normalized := strings.TrimSpace(text)
	normalized = whitespaceRuns.ReplaceAllString(normalized, " ")
	normalized = controlChars.ReplaceAllString(normalized, "")
	return normalized
}
