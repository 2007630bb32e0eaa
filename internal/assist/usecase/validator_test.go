package usecase

import (
	"strings"
	"testing"

	"todo-backend/internal/assist/domain"
	"todo-backend/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty input rejected",
			input:   "",
			wantErr: "input text is required",
		},
		{
			name:    "whitespace only rejected",
			input:   "   \t ",
			wantErr: "input text is required",
		},
		{
			name:    "single character rejected",
			input:   "a",
			wantErr: "input must be at least 2 characters",
		},
		{
			name:  "two characters accepted",
			input: "do",
		},
		{
			name:  "exactly 500 characters accepted",
			input: strings.Repeat("a", 500),
		},
		{
			name:    "501 characters rejected",
			input:   strings.Repeat("a", 501),
			wantErr: "input must be at most 500 characters",
		},
		{
			name:  "multibyte runes counted as single characters",
			input: strings.Repeat("é", 500),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.input, Normalize(tt.input))
			if tt.wantErr == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, ai.KindInputInvalid, err.Kind)
			assert.Equal(t, tt.wantErr, err.Message)
		})
	}
}

// The length ceiling applies to the text as submitted. Whitespace that
// normalization would collapse still counts.
func TestValidateInputChecksOriginalLength(t *testing.T) {
	original := "do " + strings.Repeat(" ", 600) + "it"
	normalized := Normalize(original)
	require.LessOrEqual(t, len(normalized), 500)

	err := ValidateInput(original, normalized)
	require.NotNil(t, err)
	assert.Equal(t, "input must be at most 500 characters", err.Message)
}

func TestParsePeriod(t *testing.T) {
	scope, err := ParsePeriod("today")
	require.Nil(t, err)
	assert.Equal(t, domain.PeriodToday, scope)

	scope, err = ParsePeriod("week")
	require.Nil(t, err)
	assert.Equal(t, domain.PeriodWeek, scope)

	for _, invalid := range []string{"", "month", "Today", "tomorrow"} {
		_, err := ParsePeriod(invalid)
		require.NotNil(t, err, "period %q should be rejected", invalid)
		assert.Equal(t, ai.KindInputInvalid, err.Kind)
		assert.Equal(t, "period must be today or week", err.Message)
	}
}
