package usecase

import (
	"context"
	"testing"
	"time"

	tododomain "todo-backend/internal/todo/domain"
	"todo-backend/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAssistant records calls and returns canned responses.
type mockAssistant struct {
	parseCalls   int
	parseText    string
	extraction   *ai.TodoExtraction
	parseErr     error
	summaryCalls int
	summaryCtx   ai.SummaryContext
	summary      *ai.SummaryResult
	summaryErr   error
}

func (m *mockAssistant) ParseTodo(ctx context.Context, text string, now time.Time) (*ai.TodoExtraction, error) {
	m.parseCalls++
	m.parseText = text
	return m.extraction, m.parseErr
}

func (m *mockAssistant) SummarizeTodos(ctx context.Context, sum ai.SummaryContext) (*ai.SummaryResult, error) {
	m.summaryCalls++
	m.summaryCtx = sum
	return m.summary, m.summaryErr
}

func newTestUsecase(assistant ai.AssistantService, now time.Time) *assistUsecase {
	return &assistUsecase{
		assistant: assistant,
		nowFn:     func() time.Time { return now },
	}
}

var usecaseNow = time.Date(2025, time.January, 10, 8, 0, 0, 0, time.UTC)

func TestParseTodoRejectsInvalidInputBeforeModelCall(t *testing.T) {
	mock := &mockAssistant{}
	uc := newTestUsecase(mock, usecaseNow)

	for _, input := range []string{"", "   ", "a"} {
		_, err := uc.ParseTodo(context.Background(), input)
		require.Error(t, err, "input %q", input)
		assert.Equal(t, ai.KindInputInvalid, ai.Classify(err).Kind)
	}

	assert.Zero(t, mock.parseCalls)
}

func TestParseTodoWithoutAssistant(t *testing.T) {
	uc := &assistUsecase{nowFn: func() time.Time { return usecaseNow }}

	_, err := uc.ParseTodo(context.Background(), "buy milk tomorrow")
	require.Error(t, err)
	assert.Equal(t, ai.KindConfigMissing, ai.Classify(err).Kind)
}

func TestParseTodoNormalizesBeforeModelCall(t *testing.T) {
	mock := &mockAssistant{extraction: &ai.TodoExtraction{Title: "buy milk"}}
	uc := newTestUsecase(mock, usecaseNow)

	_, err := uc.ParseTodo(context.Background(), "  buy \t milk\x00 tomorrow ")
	require.NoError(t, err)
	assert.Equal(t, "buy milk tomorrow", mock.parseText)
}

func TestParseTodoRepairsExtraction(t *testing.T) {
	mock := &mockAssistant{extraction: &ai.TodoExtraction{
		Title:   "dentist",
		DueDate: "2025-01-15",
	}}
	uc := newTestUsecase(mock, usecaseNow)

	draft, err := uc.ParseTodo(context.Background(), "dentist on wednesday")
	require.NoError(t, err)

	assert.Equal(t, "dentist", draft.Title)
	assert.Equal(t, tododomain.PriorityMedium, draft.Priority)
	require.NotNil(t, draft.DueDate)
	assert.Equal(t, time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC), *draft.DueDate)
	assert.False(t, draft.Completed)
}

func TestParseTodoPropagatesModelFailure(t *testing.T) {
	mock := &mockAssistant{parseErr: &ai.ProviderError{StatusCode: 429, Body: "quota"}}
	uc := newTestUsecase(mock, usecaseNow)

	_, err := uc.ParseTodo(context.Background(), "buy milk")
	require.Error(t, err)
	assert.Equal(t, ai.KindRateLimited, ai.Classify(err).Kind)
}

func TestSummarizeTodosRejectsInvalidPeriod(t *testing.T) {
	mock := &mockAssistant{}
	uc := newTestUsecase(mock, usecaseNow)

	_, err := uc.SummarizeTodos(context.Background(), []*tododomain.Todo{}, "tomorrow")
	require.Error(t, err)
	assert.Equal(t, ai.KindInputInvalid, ai.Classify(err).Kind)
	assert.Zero(t, mock.summaryCalls)
}

func TestSummarizeTodosWithoutAssistant(t *testing.T) {
	uc := &assistUsecase{nowFn: func() time.Time { return usecaseNow }}

	_, err := uc.SummarizeTodos(context.Background(), []*tododomain.Todo{}, "today")
	require.Error(t, err)
	assert.Equal(t, ai.KindConfigMissing, ai.Classify(err).Kind)
}

func TestSummarizeTodosBuildsContextAndPassesResultThrough(t *testing.T) {
	want := &ai.SummaryResult{
		Summary:         "all done",
		UrgentTasks:     []string{"ship release"},
		Insights:        []string{"strong morning focus"},
		Recommendations: []string{"keep it up"},
	}
	mock := &mockAssistant{summary: want}
	uc := newTestUsecase(mock, usecaseNow)

	todos := []*tododomain.Todo{
		{ID: "1", Title: "ship release", Priority: tododomain.PriorityHigh, UpdatedAt: usecaseNow},
	}

	got, err := uc.SummarizeTodos(context.Background(), todos, "today")
	require.NoError(t, err)

	// The model result is passed through unmodified.
	assert.Same(t, want, got)

	assert.Equal(t, "today", mock.summaryCtx.Period)
	assert.Equal(t, "Friday, January 10, 2025", mock.summaryCtx.CurrentDate)
	assert.Contains(t, mock.summaryCtx.AnalysisData, "Total todos: 1")
	assert.Contains(t, mock.summaryCtx.TodoList, "ship release")
}
