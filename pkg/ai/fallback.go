package ai

import (
	"context"
	"log"
	"time"
)

// FallbackService routes calls to a primary provider and retries a secondary
// one when the failure is transient (quota or network). Classified input and
// credential failures are returned as-is; retrying another provider cannot
// fix those.
type FallbackService struct {
	primary   AssistantService
	secondary AssistantService
}

// NewFallbackService creates a new fallback service over both providers
func NewFallbackService(primary, secondary AssistantService) *FallbackService {
	return &FallbackService{primary: primary, secondary: secondary}
}

// retriable reports whether a second provider could plausibly succeed.
func retriable(err error) bool {
	switch Classify(err).Kind {
	case KindRateLimited, KindNetwork:
		return true
	}
	return false
}

// ParseTodo implements AssistantService
func (f *FallbackService) ParseTodo(ctx context.Context, text string, now time.Time) (*TodoExtraction, error) {
	result, err := f.primary.ParseTodo(ctx, text, now)
	if err == nil {
		return result, nil
	}
	if f.secondary == nil || !retriable(err) {
		return nil, err
	}

	log.Printf("[AI] primary provider failed for parse: %v, falling back", err)
	return f.secondary.ParseTodo(ctx, text, now)
}

// SummarizeTodos implements AssistantService
func (f *FallbackService) SummarizeTodos(ctx context.Context, sum SummaryContext) (*SummaryResult, error) {
	result, err := f.primary.SummarizeTodos(ctx, sum)
	if err == nil {
		return result, nil
	}
	if f.secondary == nil || !retriable(err) {
		return nil, err
	}

	log.Printf("[AI] primary provider failed for summary: %v, falling back", err)
	return f.secondary.SummarizeTodos(ctx, sum)
}
