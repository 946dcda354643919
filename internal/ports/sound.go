package ports

import "time"

// AudioChannel is a single playback slot in the audio subsystem
type AudioChannel interface {
	// Load selects the clip to play. It does not start playback.
	Load(source string) error

	// Play starts playback of the loaded clip without blocking. The returned
	// channel delivers the outcome once (nil when playback started) and is closed.
	Play() <-chan error

	// Pause stops playback, keeping the loaded clip
	Pause() error

	// Seek moves the playback position for the next Play
	Seek(position time.Duration) error

	// SetVolume applies a volume in [0,1], taking effect immediately
	SetVolume(volume float64) error

	// Close stops playback and releases the channel
	Close() error
}

// AudioBackend creates audio channels
type AudioBackend interface {
	// NewChannel acquires a channel; looping channels restart the clip when it ends
	NewChannel(loop bool) (AudioChannel, error)
}

// Notifier signals that a timer session finished
type Notifier interface {
	PlayNotification()
}
