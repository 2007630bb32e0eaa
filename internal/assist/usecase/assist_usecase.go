package usecase

import (
	"context"
	"log"
	"time"

	"todo-backend/internal/assist/domain"
	tododomain "todo-backend/internal/todo/domain"
	"todo-backend/pkg/ai"
)

// assistUsecase implements AssistUsecase. It holds no per-request state:
// every request captures its own clock and runs its stages sequentially.
type assistUsecase struct {
	assistant ai.AssistantService
	nowFn     func() time.Time
}

// NewAssistUsecase creates a new instance of assistUsecase
func NewAssistUsecase() AssistUsecase {
	return &assistUsecase{
		nowFn: time.Now,
	}
}

func (u *assistUsecase) SetAssistantService(svc ai.AssistantService) {
	u.assistant = svc
}

func (u *assistUsecase) ParseTodo(ctx context.Context, text string) (*domain.ParsedTodoDraft, error) {
	normalized := Normalize(text)
	if err := ValidateInput(text, normalized); err != nil {
		return nil, err
	}

	if u.assistant == nil {
		return nil, ai.ErrNotConfigured()
	}

	now := u.nowFn()
	extraction, err := u.assistant.ParseTodo(ctx, normalized, now)
	if err != nil {
		log.Printf("[AssistUsecase] parse-todo model call failed: %v", err)
		return nil, err
	}

	return RepairDraft(extraction, now), nil
}

func (u *assistUsecase) SummarizeTodos(ctx context.Context, todos []*tododomain.Todo, period string) (*ai.SummaryResult, error) {
	scope, verr := ParsePeriod(period)
	if verr != nil {
		return nil, verr
	}

	if u.assistant == nil {
		return nil, ai.ErrNotConfigured()
	}

	now := u.nowFn()
	report := AggregateStats(todos, scope, now)

	result, err := u.assistant.SummarizeTodos(ctx, ai.SummaryContext{
		Period:       string(scope),
		CurrentDate:  now.Format("Monday, January 2, 2006"),
		AnalysisData: RenderAnalysisData(report),
		TodoList:     RenderTodoList(todos),
	})
	if err != nil {
		log.Printf("[AssistUsecase] summarize-todos model call failed: %v", err)
		return nil, err
	}

	return result, nil
}
