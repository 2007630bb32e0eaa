package domain

import (
	"time"

	tododomain "todo-backend/internal/todo/domain"
)

// ParsedTodoDraft is the fully repaired, storage-ready result of the
// ingestion pipeline. It is never persisted directly; the caller decides
// whether to create a todo from it or merge it into an existing one.
// DueDate is the only nullable field - "no deadline" is a valid state.
type ParsedTodoDraft struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	DueDate     *time.Time          `json:"due_date"`
	Priority    tododomain.Priority `json:"priority"`
	Category    string              `json:"category"`
	Completed   bool                `json:"completed"`
}
