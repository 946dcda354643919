package services

import (
	"errors"
	"fmt"
	"sync"

	"dhyan/internal/domain"
	"dhyan/internal/logging"
	"dhyan/internal/ports"
)

// AudioManager owns the ambient and notification channels
type AudioManager struct {
	ambient            ports.AudioChannel
	backend            ports.AudioBackend
	closed             bool
	mu                 sync.Mutex
	notification       ports.AudioChannel
	notificationSource string
	request            uint64 // Incremented per ambient play/pause; outcomes of older requests are ignored
	state              domain.AudioState
}

// NewAudioManager creates a manager with nothing playing.
// Channels are acquired from backend on first use.
func NewAudioManager(backend ports.AudioBackend, notificationSource string, volume float64) *AudioManager {
	return &AudioManager{
		backend:            backend,
		notificationSource: notificationSource,
		state: domain.AudioState{
			Volume: clampVolume(volume),
		},
	}
}

// Sounds returns the ambient sound catalog
func (m *AudioManager) Sounds() []domain.AmbientSound {
	return domain.AmbientSounds()
}

// FindSound looks up a catalog sound by id
func (m *AudioManager) FindSound(id string) (domain.AmbientSound, bool) {
	return domain.FindAmbientSound(id)
}

// State returns a copy of the ambient channel state
func (m *AudioManager) State() domain.AudioState {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.state
	if st.Current != nil {
		current := *st.Current
		st.Current = &current
	}
	return st
}

// EffectiveVolume is the volume currently applied to the ambient channel
func (m *AudioManager) EffectiveVolume() float64 {
	return m.State().EffectiveVolume()
}

// PlaySound starts an ambient sound, or pauses it when it is already playing.
// It never blocks; the returned channel yields the playback outcome once.
func (m *AudioManager) PlaySound(sound domain.AmbientSound) <-chan error {
	outcome := make(chan error, 1)

	catalogSound, ok := domain.FindAmbientSound(sound.ID)
	if !ok {
		outcome <- fmt.Errorf("%w: unknown sound %q", domain.ErrInvalidInput, sound.ID)
		close(outcome)
		return outcome
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Playing && m.state.Current != nil && m.state.Current.ID == catalogSound.ID {
		m.pauseLocked()
		logging.Logger.Debug("Ambient sound toggled off", "sound", catalogSound.ID)
		close(outcome)
		return outcome
	}

	channel, err := m.ambientLocked()
	if err != nil {
		m.failLocked(outcome, catalogSound, err)
		return outcome
	}

	// A new clip implicitly replaces the previous one
	if m.state.Playing {
		if err := channel.Pause(); err != nil {
			logging.Logger.Warn("Failed to stop previous ambient sound", "error", err)
		}
	}

	if err := channel.Load(catalogSound.Source); err != nil {
		m.failLocked(outcome, catalogSound, err)
		return outcome
	}
	if err := channel.SetVolume(m.state.EffectiveVolume()); err != nil {
		logging.Logger.Warn("Failed to set ambient volume", "error", err)
	}

	m.request++
	request := m.request
	result := channel.Play()

	m.state.Playing = true
	m.state.Current = &catalogSound
	logging.Logger.Info("Ambient sound requested", "sound", catalogSound.ID, "volume", m.state.EffectiveVolume())

	go m.awaitPlayback(request, catalogSound, result, outcome)
	return outcome
}

// PlaySoundByID looks up a catalog sound and plays it
func (m *AudioManager) PlaySoundByID(id string) <-chan error {
	sound, ok := domain.FindAmbientSound(id)
	if !ok {
		// PlaySound reports the unknown id
		sound = domain.AmbientSound{ID: id}
	}
	return m.PlaySound(sound)
}

// awaitPlayback reconciles state with the asynchronous outcome of a play request
func (m *AudioManager) awaitPlayback(request uint64, sound domain.AmbientSound, result <-chan error, outcome chan<- error) {
	defer close(outcome)

	err, ok := <-result
	if !ok || err == nil {
		return
	}

	err = fmt.Errorf("%w: %s: %w", domain.ErrPlaybackFailure, sound.ID, err)
	logging.Logger.Warn("Ambient playback failed", "sound", sound.ID, "error", err)

	m.mu.Lock()
	if m.request == request {
		m.state.Playing = false
	}
	m.mu.Unlock()

	outcome <- err
}

// failLocked records a synchronous playback failure. Caller holds mu.
func (m *AudioManager) failLocked(outcome chan<- error, sound domain.AmbientSound, err error) {
	err = fmt.Errorf("%w: %s: %w", domain.ErrPlaybackFailure, sound.ID, err)
	logging.Logger.Warn("Ambient playback failed", "sound", sound.ID, "error", err)
	m.request++
	m.state.Playing = false
	m.state.Current = &sound
	outcome <- err
	close(outcome)
}

// PauseSound pauses the ambient channel. Safe to call when nothing plays.
func (m *AudioManager) PauseSound() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseLocked()
}

// pauseLocked pauses the ambient channel. Caller holds mu.
func (m *AudioManager) pauseLocked() {
	m.request++
	if m.ambient != nil && m.state.Playing {
		if err := m.ambient.Pause(); err != nil {
			logging.Logger.Warn("Failed to pause ambient sound", "error", err)
		}
	}
	m.state.Playing = false
}

// SetVolume sets the ambient volume. Values outside [0,1] are clamped.
func (m *AudioManager) SetVolume(volume float64) {
	clamped := clampVolume(volume)
	if clamped != volume {
		logging.Logger.Warn("Volume out of range, clamping", "requested", volume, "applied", clamped)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Volume = clamped
	m.applyVolumeLocked()
}

// AdjustVolume changes the ambient volume by delta, clamped to [0,1]
func (m *AudioManager) AdjustVolume(delta float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Volume = clampVolume(m.state.Volume + delta)
	m.applyVolumeLocked()
}

// ToggleMute flips the mute flag
func (m *AudioManager) ToggleMute() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Muted = !m.state.Muted
	m.applyVolumeLocked()
}

// applyVolumeLocked pushes the effective volume to the ambient channel. Caller holds mu.
func (m *AudioManager) applyVolumeLocked() {
	if m.ambient == nil {
		return
	}
	if err := m.ambient.SetVolume(m.state.EffectiveVolume()); err != nil {
		logging.Logger.Warn("Failed to apply ambient volume", "error", err)
	}
}

// PlayNotification plays the session-complete clip from the start.
// Failures are logged and never returned.
func (m *AudioManager) PlayNotification() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	if m.notification == nil {
		channel, err := m.backend.NewChannel(false)
		if err != nil {
			logging.Logger.Warn("Failed to acquire notification channel", "error", err)
			return
		}
		if err := channel.Load(m.notificationSource); err != nil {
			logging.Logger.Warn("Failed to load notification sound", "source", m.notificationSource, "error", err)
			_ = channel.Close()
			return
		}
		if err := channel.SetVolume(domain.NotificationVolume); err != nil {
			logging.Logger.Warn("Failed to set notification volume", "error", err)
		}
		m.notification = channel
	}

	if err := m.notification.Seek(0); err != nil {
		logging.Logger.Warn("Failed to rewind notification sound", "error", err)
	}

	result := m.notification.Play()
	go func() {
		if err, ok := <-result; ok && err != nil {
			logging.Logger.Warn("Notification sound failed",
				"error", fmt.Errorf("%w: %w", domain.ErrPlaybackFailure, err))
		}
	}()
}

// Close stops playback and releases both channels
func (m *AudioManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.request++
	m.state.Playing = false

	var errs []error
	if m.ambient != nil {
		errs = append(errs, m.ambient.Close())
		m.ambient = nil
	}
	if m.notification != nil {
		errs = append(errs, m.notification.Close())
		m.notification = nil
	}
	return errors.Join(errs...)
}

// ambientLocked returns the ambient channel, acquiring it on first use. Caller holds mu.
func (m *AudioManager) ambientLocked() (ports.AudioChannel, error) {
	if m.closed {
		return nil, errors.New("audio manager closed")
	}
	if m.ambient != nil {
		return m.ambient, nil
	}
	channel, err := m.backend.NewChannel(true)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire ambient channel: %w", err)
	}
	m.ambient = channel
	return channel, nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
