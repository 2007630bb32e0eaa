package usecase

import (
	"strings"
	"testing"
	"time"

	tododomain "todo-backend/internal/todo/domain"
	"todo-backend/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Friday morning, before the default due time.
var repairNow = time.Date(2025, time.January, 10, 8, 0, 0, 0, time.UTC)

func TestRepairDraftTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "empty title gets placeholder",
			title:    "",
			expected: "untitled task",
		},
		{
			name:     "whitespace title gets placeholder",
			title:    "   ",
			expected: "untitled task",
		},
		{
			name:     "short title kept as-is",
			title:    "buy milk",
			expected: "buy milk",
		},
		{
			name:     "exactly 100 runes kept as-is",
			title:    strings.Repeat("a", 100),
			expected: strings.Repeat("a", 100),
		},
		{
			name:     "overlong title truncated with ellipsis",
			title:    strings.Repeat("a", 120),
			expected: strings.Repeat("a", 97) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := RepairDraft(&ai.TodoExtraction{Title: tt.title}, repairNow)
			assert.Equal(t, tt.expected, draft.Title)
		})
	}
}

func TestRepairDraftTruncatedTitleLength(t *testing.T) {
	draft := RepairDraft(&ai.TodoExtraction{Title: strings.Repeat("x", 300)}, repairNow)
	assert.Len(t, []rune(draft.Title), 100)
	assert.True(t, strings.HasSuffix(draft.Title, "..."))
}

func TestRepairDraftDueDate(t *testing.T) {
	tests := []struct {
		name     string
		dueDate  string
		dueTime  string
		expected *time.Time
	}{
		{
			name:     "missing date stays nil",
			dueDate:  "",
			dueTime:  "14:00",
			expected: nil,
		},
		{
			name:     "unparseable date dropped",
			dueDate:  "next tuesday",
			expected: nil,
		},
		{
			name:     "date with time combined",
			dueDate:  "2025-01-15",
			dueTime:  "14:30",
			expected: timePtr(time.Date(2025, time.January, 15, 14, 30, 0, 0, time.UTC)),
		},
		{
			name:     "missing time defaults to 09:00",
			dueDate:  "2025-01-15",
			dueTime:  "",
			expected: timePtr(time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)),
		},
		{
			name:     "unparseable time defaults to 09:00",
			dueDate:  "2025-01-15",
			dueTime:  "2pm",
			expected: timePtr(time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)),
		},
		{
			name:     "today kept even when due time already passed",
			dueDate:  "2025-01-10",
			dueTime:  "07:00",
			expected: timePtr(time.Date(2025, time.January, 10, 7, 0, 0, 0, time.UTC)),
		},
		{
			name:     "yesterday kept by the one-day grace window",
			dueDate:  "2025-01-09",
			dueTime:  "23:59",
			expected: timePtr(time.Date(2025, time.January, 9, 23, 59, 0, 0, time.UTC)),
		},
		{
			name:     "two days ago dropped",
			dueDate:  "2025-01-08",
			dueTime:  "09:00",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := RepairDraft(&ai.TodoExtraction{Title: "t", DueDate: tt.dueDate, DueTime: tt.dueTime}, repairNow)
			if tt.expected == nil {
				assert.Nil(t, draft.DueDate)
				return
			}
			require.NotNil(t, draft.DueDate)
			assert.True(t, tt.expected.Equal(*draft.DueDate), "want %v, got %v", tt.expected, draft.DueDate)
		})
	}
}

func TestRepairDraftPriority(t *testing.T) {
	tests := []struct {
		raw      string
		expected tododomain.Priority
	}{
		{"high", tododomain.PriorityHigh},
		{"medium", tododomain.PriorityMedium},
		{"low", tododomain.PriorityLow},
		{"", tododomain.PriorityMedium},
		{"urgent", tododomain.PriorityMedium},
		{"HIGH", tododomain.PriorityMedium},
	}

	for _, tt := range tests {
		draft := RepairDraft(&ai.TodoExtraction{Title: "t", Priority: tt.raw}, repairNow)
		assert.Equal(t, tt.expected, draft.Priority, "priority %q", tt.raw)
	}
}

func TestRepairDraftDefaults(t *testing.T) {
	draft := RepairDraft(&ai.TodoExtraction{}, repairNow)

	assert.Equal(t, "untitled task", draft.Title)
	assert.Empty(t, draft.Description)
	assert.Nil(t, draft.DueDate)
	assert.Equal(t, tododomain.PriorityMedium, draft.Priority)
	assert.Empty(t, draft.Category)
	assert.False(t, draft.Completed)
}

func TestRepairDraftTrimsFields(t *testing.T) {
	draft := RepairDraft(&ai.TodoExtraction{
		Title:       "  buy milk  ",
		Description: "  2 liters  ",
		Category:    "  shopping  ",
	}, repairNow)

	assert.Equal(t, "buy milk", draft.Title)
	assert.Equal(t, "2 liters", draft.Description)
	assert.Equal(t, "shopping", draft.Category)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
