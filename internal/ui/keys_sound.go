package ui

import (
	"dhyan/internal/config"
)

// SoundKeys defines key bindings for ambient audio
type SoundKeys struct {
	Mute       KeyWithTip
	Picker     KeyWithTip
	Stop       KeyWithTip
	VolumeDown KeyWithTip
	VolumeUp   KeyWithTip
}

func newSoundKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) SoundKeys {
	return SoundKeys{
		Mute:       buildBinding("mute", defaults, customKeys),
		Picker:     buildBinding("sound_picker", defaults, customKeys),
		Stop:       buildBinding("stop_sound", defaults, customKeys),
		VolumeDown: buildBinding("volume_down", defaults, customKeys),
		VolumeUp:   buildBinding("volume_up", defaults, customKeys),
	}
}
