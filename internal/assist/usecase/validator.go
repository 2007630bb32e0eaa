package usecase

import (
	"strings"
	"unicode/utf8"

	"todo-backend/internal/assist/domain"
	"todo-backend/pkg/ai"
)

const (
	minInputRunes = 2
	maxInputRunes = 500
)

// ValidateInput rejects text that cannot plausibly produce a usable todo
// before a model call is paid for. The maximum-length rule is checked against
// the ORIGINAL text: a long run of whitespace that normalization would strip
// still counts against the limit.
func ValidateInput(original, normalized string) *ai.Error {
	if strings.TrimSpace(normalized) == "" {
		return ai.NewInputError("input text is required")
	}
	if utf8.RuneCountInString(normalized) < minInputRunes {
		return ai.NewInputError("input must be at least 2 characters")
	}
	if utf8.RuneCountInString(original) > maxInputRunes {
		return ai.NewInputError("input must be at most 500 characters")
	}
	return nil
}

// ParsePeriod validates the summarization scope before aggregation runs
func ParsePeriod(period string) (domain.Period, *ai.Error) {
	switch period {
	case string(domain.PeriodToday):
		return domain.PeriodToday, nil
	case string(domain.PeriodWeek):
		return domain.PeriodWeek, nil
	default:
		return "", ai.NewInputError("period must be today or week")
	}
}
