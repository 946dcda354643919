package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")

	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.January, Day: 10}, d)
	assert.Equal(t, "2024-01-10", d.String())
}

func TestParseDate_AcceptsTimestamp(t *testing.T) {
	ts := time.Date(2024, time.May, 3, 12, 0, 0, 0, time.Local).Format(time.RFC3339)

	d, err := ParseDate(ts)

	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.May, Day: 3}, d)
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("10/01/2024")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseDueDate(t *testing.T) {
	now := time.Date(2026, time.December, 31, 18, 0, 0, 0, time.Local)

	tests := []struct {
		input    string
		expected Date
	}{
		{"today", Date{Year: 2026, Month: time.December, Day: 31}},
		{"Tomorrow", Date{Year: 2027, Month: time.January, Day: 1}},
		{"2026-05-04", Date{Year: 2026, Month: time.May, Day: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDueDate(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseDueDate("next week", now)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
