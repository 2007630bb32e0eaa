package domain

import (
	tododomain "todo-backend/internal/todo/domain"
)

// Period scopes a statistics report
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
)

// PriorityBucket holds per-priority counts and completion rate
type PriorityBucket struct {
	Priority       tododomain.Priority `json:"priority"`
	Total          int                 `json:"total"`
	Completed      int                 `json:"completed"`
	Incomplete     int                 `json:"incomplete"`
	CompletionRate float64             `json:"completion_rate"`
}

// CategoryStat holds per-category counts, in first-seen order
type CategoryStat struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// TimeSlotStat holds counts for one fixed time-of-day bucket
type TimeSlotStat struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// WeekdayStat holds counts for one due-date weekday (week scope only)
type WeekdayStat struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// StatisticsReport is the deterministic multi-dimensional aggregate computed
// over a todo collection. It is computed fresh per summarization request and
// injected into the model prompt as factual grounding.
type StatisticsReport struct {
	Period         Period  `json:"period"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Incomplete     int     `json:"incomplete"`
	CompletionRate float64 `json:"completion_rate"`

	// Fixed order: high, medium, low
	Priorities []PriorityBucket `json:"priorities"`

	// First-seen order; empty category grouped as "uncategorized"
	Categories []CategoryStat `json:"categories"`

	WithDueDate     int     `json:"with_due_date"`
	OnTimeCompleted int     `json:"on_time_completed"`
	ComplianceRate  float64 `json:"compliance_rate"`

	// Overdue is always incomplete; LateButDone is always completed
	Overdue     []*tododomain.Todo `json:"overdue"`
	LateButDone []*tododomain.Todo `json:"late_but_done"`

	// Incomplete high-priority todos, exposed as a set so downstream text
	// can name them
	Urgent []*tododomain.Todo `json:"urgent"`

	// Fixed order: morning, afternoon, evening, night
	TimeSlots []TimeSlotStat `json:"time_slots"`
	// Bucket with the highest total; ties resolve to the first bucket in
	// enumeration order. Empty when no todo has a due date.
	BusiestSlot string `json:"busiest_slot"`

	// Week scope only, first-seen order
	Weekdays []WeekdayStat `json:"weekdays,omitempty"`

	// Highest completion rate among non-empty groups; "none" when empty
	BestCategory string `json:"best_category"`
	BestPriority string `json:"best_priority"`
}
