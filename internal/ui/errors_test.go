package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		maxWidth int
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			maxWidth: 80,
			expected: "",
		},
		{
			name:     "empty message",
			err:      errors.New(""),
			maxWidth: 80,
			expected: "Error: unknown error",
		},
		{
			name:     "fits on one line",
			err:      errors.New("task not found"),
			maxWidth: 80,
			expected: "Error: task not found",
		},
		{
			name:     "wraps onto second line",
			err:      errors.New("failed to save task: disk is full"),
			maxWidth: 27,
			expected: "Error: failed to save task:\ndisk is full",
		},
		{
			name:     "truncates after two lines",
			err:      errors.New("one two three four five six seven eight nine ten"),
			maxWidth: 20,
			expected: "Error: one two three\nfour five six sev...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.maxWidth))
		})
	}
}

func TestFormatErrorForDisplay_NeverExceedsTwoLines(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 200))

	formatted := formatErrorForDisplay(err, 30)

	assert.LessOrEqual(t, strings.Count(formatted, "\n"), 1)
	assert.True(t, strings.HasSuffix(formatted, "..."))
}
