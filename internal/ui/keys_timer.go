package ui

import (
	"dhyan/internal/config"
)

// TimerKeys defines key bindings for the session timer
type TimerKeys struct {
	FocusGoal  KeyWithTip
	LongBreak  KeyWithTip
	Reset      KeyWithTip
	ShortBreak KeyWithTip
	StartFocus KeyWithTip
	StartPause KeyWithTip
}

func newTimerKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) TimerKeys {
	return TimerKeys{
		FocusGoal:  buildBinding("focus_goal", defaults, customKeys),
		LongBreak:  buildBinding("long_break", defaults, customKeys),
		Reset:      buildBinding("reset", defaults, customKeys),
		ShortBreak: buildBinding("short_break", defaults, customKeys),
		StartFocus: buildBinding("start_focus", defaults, customKeys),
		StartPause: buildBinding("start_pause", defaults, customKeys),
	}
}
