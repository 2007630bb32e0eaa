package domain

import "time"

// Priority represents todo priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Todo represents a dated, prioritized task owned by a user.
// UpdatedAt is bumped on every mutation and doubles as the completion
// timestamp when the todo is completed.
type Todo struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    Priority   `json:"priority" gorm:"default:medium"`
	Category    string     `json:"category,omitempty"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CreatedDate time.Time  `json:"created_date" gorm:"column:created_date"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
