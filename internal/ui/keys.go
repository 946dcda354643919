package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"dhyan/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Sound       SoundKeys
	Tasks       TaskKeys
	Timer       TimerKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Navigation:  newNavigationKeys(defaults, customKeys),
		Sound:       newSoundKeys(defaults, customKeys),
		Tasks:       newTaskKeys(defaults, customKeys),
		Timer:       newTimerKeys(defaults, customKeys),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Timer.StartPause.Binding,
		k.Timer.Reset.Binding,
		k.Sound.Picker.Binding,
		k.Tasks.New.Binding,
		k.Tasks.Toggle.Binding,
		k.Tasks.CycleFilter.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}
