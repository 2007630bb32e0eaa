package usecase

import (
	"context"

	"todo-backend/internal/assist/domain"
	tododomain "todo-backend/internal/todo/domain"
	"todo-backend/pkg/ai"
)

// AssistUsecase defines the interface for the two AI pipelines
type AssistUsecase interface {
	// ParseTodo runs the ingestion pipeline: normalize, validate, model
	// call, repair. Returns a fully populated draft.
	ParseTodo(ctx context.Context, text string) (*domain.ParsedTodoDraft, error)

	// SummarizeTodos runs the analytics pipeline: validate period,
	// aggregate, model call. The model result is passed through unmodified.
	SummarizeTodos(ctx context.Context, todos []*tododomain.Todo, period string) (*ai.SummaryResult, error)

	// SetAssistantService sets the AI provider
	SetAssistantService(svc ai.AssistantService)
}
