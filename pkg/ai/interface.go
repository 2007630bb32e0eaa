package ai

import (
	"context"
	"time"
)

// TodoExtraction is the raw structured output the model returns for a parse
// request. Every field is optional at this stage; the repair step in the
// assist usecase fills defaults and enforces limits.
type TodoExtraction struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"` // YYYY-MM-DD
	DueTime     string `json:"due_time,omitempty"` // HH:mm, 24-hour
	Priority    string `json:"priority,omitempty"` // high | medium | low
	Category    string `json:"category,omitempty"`
}

// SummaryResult is the structured insight the model returns for a summary
// request. It is passed through to the caller unmodified.
type SummaryResult struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// SummaryContext carries the deterministic grounding facts computed by the
// stats aggregator. The provider wraps these into its prompt so the narrative
// cannot diverge from the real numbers.
type SummaryContext struct {
	Period       string // "today" or "week"
	CurrentDate  string // human-readable current date, e.g. "Friday, January 10, 2025"
	AnalysisData string // rendered statistics report
	TodoList     string // rendered per-todo detail lines
}

// AssistantService is the interface for structured model calls.
// Implement this interface to add new AI providers (Gemini, Ollama, etc.)
type AssistantService interface {
	ParseTodo(ctx context.Context, text string, now time.Time) (*TodoExtraction, error)
	SummarizeTodos(ctx context.Context, sum SummaryContext) (*SummaryResult, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
