package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	calls      int
	extraction *TodoExtraction
	summary    *SummaryResult
	err        error
}

func (s *stubProvider) ParseTodo(ctx context.Context, text string, now time.Time) (*TodoExtraction, error) {
	s.calls++
	return s.extraction, s.err
}

func (s *stubProvider) SummarizeTodos(ctx context.Context, sum SummaryContext) (*SummaryResult, error) {
	s.calls++
	return s.summary, s.err
}

func TestFallbackUsesPrimaryOnSuccess(t *testing.T) {
	primary := &stubProvider{extraction: &TodoExtraction{Title: "from primary"}}
	secondary := &stubProvider{extraction: &TodoExtraction{Title: "from secondary"}}
	svc := NewFallbackService(primary, secondary)

	got, err := svc.ParseTodo(context.Background(), "text", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "from primary", got.Title)
	assert.Zero(t, secondary.calls)
}

func TestFallbackRetriesTransientFailures(t *testing.T) {
	transient := []error{
		&ProviderError{StatusCode: 429, Body: "quota"},
		errors.New("dial tcp 127.0.0.1:443: connection refused"),
	}

	for _, primaryErr := range transient {
		primary := &stubProvider{err: primaryErr}
		secondary := &stubProvider{summary: &SummaryResult{Summary: "rescued"}}
		svc := NewFallbackService(primary, secondary)

		got, err := svc.SummarizeTodos(context.Background(), SummaryContext{})
		require.NoError(t, err, "primary error %v", primaryErr)
		assert.Equal(t, "rescued", got.Summary)
		assert.Equal(t, 1, secondary.calls)
	}
}

func TestFallbackDoesNotRetryPermanentFailures(t *testing.T) {
	permanent := []error{
		&ProviderError{StatusCode: 401, Body: "bad key"},
		&ProviderError{StatusCode: 400, Body: "INVALID_ARGUMENT"},
		NewInputError("input text is required"),
	}

	for _, primaryErr := range permanent {
		primary := &stubProvider{err: primaryErr}
		secondary := &stubProvider{}
		svc := NewFallbackService(primary, secondary)

		_, err := svc.ParseTodo(context.Background(), "text", time.Now())
		require.Error(t, err, "primary error %v", primaryErr)
		assert.Zero(t, secondary.calls, "primary error %v", primaryErr)
	}
}
