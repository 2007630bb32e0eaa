package usecase

import (
	"strings"
	"time"
	"unicode/utf8"

	"todo-backend/internal/assist/domain"
	tododomain "todo-backend/internal/todo/domain"
	"todo-backend/pkg/ai"
)

const (
	placeholderTitle = "untitled task"
	maxTitleRunes    = 100
	keptTitleRunes   = 97
	defaultDueTime   = "09:00"
)

// RepairDraft turns the model's untrusted extraction into a fully populated,
// storage-ready draft. Every branch has a safe default, so it never fails,
// and it is deterministic given the extraction and now. now must be the
// request's captured clock, not an ambient read, so the past-date boundary
// stays testable.
func RepairDraft(raw *ai.TodoExtraction, now time.Time) *domain.ParsedTodoDraft {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = placeholderTitle
	} else if utf8.RuneCountInString(title) > maxTitleRunes {
		runes := []rune(title)
		title = string(runes[:keptTitleRunes]) + "..."
	}

	return &domain.ParsedTodoDraft{
		Title:       title,
		Description: strings.TrimSpace(raw.Description),
		DueDate:     repairDueDate(raw.DueDate, raw.DueTime, now),
		Priority:    repairPriority(raw.Priority),
		Category:    strings.TrimSpace(raw.Category),
		Completed:   false,
	}
}

// repairDueDate combines the model's date and time fields into one moment.
// A missing time defaults to 09:00. Dates a full day or more in the past are
// dropped entirely; same-day due dates are always kept. The floor is
// yesterday at midnight - a deliberate one-day grace window, not a strict
// "no past dates" rule.
func repairDueDate(dueDate, dueTime string, now time.Time) *time.Time {
	if dueDate == "" {
		return nil
	}

	date, err := time.ParseInLocation("2006-01-02", dueDate, now.Location())
	if err != nil {
		return nil
	}

	if dueTime == "" {
		dueTime = defaultDueTime
	}
	clock, err := time.Parse("15:04", dueTime)
	if err != nil {
		clock, _ = time.Parse("15:04", defaultDueTime)
	}

	candidate := time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())

	yesterday := now.AddDate(0, 0, -1)
	floor := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, now.Location())
	candidateMidnight := time.Date(candidate.Year(), candidate.Month(), candidate.Day(), 0, 0, 0, 0, now.Location())

	if candidateMidnight.Before(floor) {
		return nil
	}
	return &candidate
}

func repairPriority(p string) tododomain.Priority {
	switch p {
	case "high":
		return tododomain.PriorityHigh
	case "low":
		return tododomain.PriorityLow
	default:
		return tododomain.PriorityMedium
	}
}
