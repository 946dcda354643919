package domain

import (
	"fmt"
	"time"
)

// SessionType identifies one of the three timed intervals
type SessionType string

const (
	SessionFocus      SessionType = "focus"
	SessionShortBreak SessionType = "short-break"
	SessionLongBreak  SessionType = "long-break"
)

// Session durations in seconds
const (
	FocusSeconds      = 25 * 60
	ShortBreakSeconds = 5 * 60
	LongBreakSeconds  = 15 * 60
)

// LongBreakInterval is the number of completed focus sessions between long breaks
const LongBreakInterval = 4

// TickInterval is the nominal period between timer ticks
const TickInterval = time.Second

// SessionTypes lists the session types in display order
var SessionTypes = []SessionType{SessionFocus, SessionShortBreak, SessionLongBreak}

// Duration returns the length of the session type in seconds, or 0 if unknown
func (t SessionType) Duration() int {
	switch t {
	case SessionFocus:
		return FocusSeconds
	case SessionShortBreak:
		return ShortBreakSeconds
	case SessionLongBreak:
		return LongBreakSeconds
	}
	return 0
}

// IsValid reports whether t is a known session type
func (t SessionType) IsValid() bool {
	return t.Duration() > 0
}

// Label returns the human readable name shown in the UI
func (t SessionType) Label() string {
	switch t {
	case SessionFocus:
		return "Focus"
	case SessionShortBreak:
		return "Short Break"
	case SessionLongBreak:
		return "Long Break"
	}
	return string(t)
}

// ParseSessionType converts a CLI or settings value to a SessionType
func ParseSessionType(s string) (SessionType, error) {
	t := SessionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown session type %q", ErrInvalidInput, s)
	}
	return t, nil
}

// NextSession returns the session that follows a completed session of type current,
// together with the updated focus count.
func NextSession(current SessionType, count int) (SessionType, int) {
	if current != SessionFocus {
		return SessionFocus, count
	}
	count++
	if count%LongBreakInterval == 0 {
		return SessionLongBreak, count
	}
	return SessionShortBreak, count
}

// Session is a point-in-time view of the timer state
type Session struct {
	Completions int // Completion transitions since startup
	Count       int // Completed focus sessions
	Running     bool
	TimeLeft    int // Seconds
	Type        SessionType
}

// NewSession returns the startup state: a paused, full-length focus session
func NewSession() Session {
	return Session{
		TimeLeft: FocusSeconds,
		Type:     SessionFocus,
	}
}

// Formatted renders the remaining time as zero-padded MM:SS
func (s Session) Formatted() string {
	return FormatClock(s.TimeLeft)
}

// Progress returns the elapsed fraction of the current session in [0,1]
func (s Session) Progress() float64 {
	total := s.Type.Duration()
	if total == 0 {
		return 0
	}
	p := 1 - float64(s.TimeLeft)/float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// FormatClock renders seconds as MM:SS
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
