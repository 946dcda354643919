package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionType_Duration(t *testing.T) {
	tests := []struct {
		sessionType SessionType
		expected    int
	}{
		{SessionFocus, 1500},
		{SessionShortBreak, 300},
		{SessionLongBreak, 900},
		{SessionType("nap"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.sessionType), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sessionType.Duration())
		})
	}
}

func TestNextSession_LongBreakEveryFourthFocus(t *testing.T) {
	current := SessionFocus
	count := 0
	var sequence []SessionType

	for i := 0; i < 8; i++ {
		current, count = NextSession(current, count)
		sequence = append(sequence, current)
	}

	assert.Equal(t, []SessionType{
		SessionShortBreak, SessionFocus,
		SessionShortBreak, SessionFocus,
		SessionShortBreak, SessionFocus,
		SessionLongBreak, SessionFocus,
	}, sequence)
	assert.Equal(t, 4, count)
}

func TestNextSession_BreakKeepsCount(t *testing.T) {
	next, count := NextSession(SessionLongBreak, 4)

	assert.Equal(t, SessionFocus, next)
	assert.Equal(t, 4, count)
}

func TestParseSessionType(t *testing.T) {
	st, err := ParseSessionType("short-break")
	require.NoError(t, err)
	assert.Equal(t, SessionShortBreak, st)

	_, err = ParseSessionType("coffee")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{1500, "25:00"},
		{299, "04:59"},
		{61, "01:01"},
		{0, "00:00"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.seconds))
		})
	}
}

func TestSession_Progress(t *testing.T) {
	s := NewSession()
	assert.Equal(t, 0.0, s.Progress())

	s.TimeLeft = 750
	assert.InDelta(t, 0.5, s.Progress(), 1e-9)

	s.TimeLeft = 0
	assert.Equal(t, 1.0, s.Progress())
}

func TestNewSession(t *testing.T) {
	s := NewSession()

	assert.Equal(t, SessionFocus, s.Type)
	assert.Equal(t, 1500, s.TimeLeft)
	assert.False(t, s.Running)
	assert.Zero(t, s.Count)
	assert.Equal(t, "25:00", s.Formatted())
}
